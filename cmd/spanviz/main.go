package main

import "github.com/katalvlaran/spanviz/cmd/spanviz/commands"

func main() {
	commands.Execute()
}
