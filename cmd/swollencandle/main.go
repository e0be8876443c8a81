package main

import (
	"os"

	"github.com/ortfero/swollencandle/cmd/swollencandle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
