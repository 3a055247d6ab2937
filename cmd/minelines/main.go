package main

import (
	"github.com/goldrock/minelines/commands"
)

func main() {
	commands.Execute()
}
