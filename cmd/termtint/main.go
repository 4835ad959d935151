package main

import "termtint/internal/cli"

func main() {
	cli.Execute()
}
