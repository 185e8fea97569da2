// SPDX-License-Identifier: MPL-2.0

// Command cat is the stand-alone build of the cat utility.
package main

import cmd "github.com/win32coreutils/coreutils/cmd/coreutils"

func main() {
	cmd.ExecuteUtility("cat")
}
