package main

import (
	"os"

	"github.com/bafv4/minecraft-keybindings-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
