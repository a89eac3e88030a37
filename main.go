package main

import (
	"os"

	"github.com/grovetools/nvim2idea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
