package main

import "github.com/seqbench/contbench/cmd"

func main() {
	cmd.Execute()
}
