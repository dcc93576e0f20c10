package main

import "github.com/mcoot/mtarp-portal/internal/cli"

func main() {
	cli.Execute()
}
