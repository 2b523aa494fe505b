package main

import "resumebuilder/internal/cli"

func main() {
	cli.Execute()
}
