package main

import "github.com/notargets/fluxinit/cmd"

func main() {
	cmd.Execute()
}
