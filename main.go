// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/win32coreutils/coreutils/cmd/coreutils"

func main() {
	cmd.Execute()
}
