package main

import (
	"os"

	"github.com/rfaguiar/secalloc/cmd/secalloc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
