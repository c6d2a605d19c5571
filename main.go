package main

import "github.com/brk3/momentum/cmd"

func main() {
	cmd.Execute()
}
