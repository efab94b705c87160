package main

import "github.com/mind-engage/selfcheck/internal/cli"

func main() {
	cli.Execute()
}
