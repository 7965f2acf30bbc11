package main

import "github.com/havenline/crisiscore/internal/cli"

func main() {
	cli.Execute()
}
