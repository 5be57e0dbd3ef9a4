// Package main is the entry point for the capitalize command-line tool.
package main

import "github.com/jsamuelsen11/greeter/internal/cli"

func main() {
	cli.Execute()
}
