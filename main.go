// SPDX-License-Identifier: MPL-2.0

package main

import cmd "procman/cmd/procman"

func main() {
	cmd.Execute()
}
