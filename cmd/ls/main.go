// SPDX-License-Identifier: MPL-2.0

// Command ls is the stand-alone build of the ls utility.
package main

import cmd "github.com/win32coreutils/coreutils/cmd/coreutils"

func main() {
	cmd.ExecuteUtility("ls")
}
