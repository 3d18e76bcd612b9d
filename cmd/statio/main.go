/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/statio-project/statio/pkg/cli"

func main() {
	cli.Execute()
}
