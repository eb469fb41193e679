// Package main is the entry point for the apiprep CLI.
package main

import "apiprep.dev/pkg/apiprep/cmd"

func main() {
	cmd.Execute()
}
