// SPDX-License-Identifier: MPL-2.0

// Command yes is the stand-alone build of the yes utility.
package main

import cmd "github.com/win32coreutils/coreutils/cmd/coreutils"

func main() {
	cmd.ExecuteUtility("yes")
}
