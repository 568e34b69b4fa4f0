package main

import (
	"os"

	"github.com/nutmeg-lang/nutmeg/cmd/nutmeg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
