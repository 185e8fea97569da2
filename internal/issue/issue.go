// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	UtilityNotFoundId
	InvalidArgumentsId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages about this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Where we look (first match wins):
1. The file given with --config
2. The config.cue in your configuration directory
3. config.cue in the current directory

## Things you can try:
- Print the expected format:
~~~
$ coreutils config dump
~~~

- Show where the configuration is read from:
~~~
$ coreutils config path
~~~

- Recreate a default file:
~~~
$ coreutils config init
~~~`,
		docLinks: []HttpLink{"https://cuelang.org/docs/tour/"},
	}

	utilityNotFoundIssue = &Issue{
		id: UtilityNotFoundId,
		mdMsg: `
# Unknown utility!

The requested utility is not part of this build.

## Things you can try:
- List the available utilities:
~~~
$ coreutils --help
~~~

- Call a utility through the multi-call binary:
~~~
$ coreutils ls -l
~~~

- Or copy/link the binary under the utility's name (ls.exe, cat.exe, yes.exe).`,
	}

	invalidArgumentsIssue = &Issue{
		id: InvalidArgumentsId,
		mdMsg: `
# Invalid arguments!

The command line could not be parsed.

## Things you can try:
- Check the usage of the utility:
~~~
$ coreutils ls --help
~~~

- Separate file names that start with a dash with '--':
~~~
$ coreutils cat -- -notes.txt
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- The configuration directory is not writable
- The file is locked by another process

## Things you can try:
- Check the permissions of the file or directory
- Run the command from a directory you own`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		utilityNotFoundIssue.Id():  utilityNotFoundIssue,
		invalidArgumentsIssue.Id(): invalidArgumentsIssue,
		permissionDeniedIssue.Id(): permissionDeniedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
