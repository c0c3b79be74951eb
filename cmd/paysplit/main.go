package main

import (
	"os"

	"github.com/paysplitorg/libpaysplit-go/cmd/paysplit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
