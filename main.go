package main

import "github.com/chainpulse/narrative-radar/cmd"

func main() {
	cmd.Execute()
}
