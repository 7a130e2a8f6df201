package main

import "github.com/dmitrymomot/whitebox/internal/cli"

func main() {
	cli.Execute()
}
