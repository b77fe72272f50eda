package main

import "github.com/zerohexer/cspnet/cmd/cspnet/cmd"

func main() {
	cmd.Execute()
}
