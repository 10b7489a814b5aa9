package main

import "github.com/dgallion1/mdgraph/internal/cli"

func main() {
	cli.Execute()
}
