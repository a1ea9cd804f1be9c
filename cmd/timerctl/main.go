package main

import (
	"os"

	"timerpool/cmd/timerctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
