package main

import (
	"os"

	"lunchline/cmd/lunchline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
