package main

import "github.com/scalebench/benchviz/src/cli"

func main() {
	cli.Execute()
}
