package main

import (
	"os"

	"github.com/rustyeddy/n225risk/cmd/n225risk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
