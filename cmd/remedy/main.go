package main

import (
	"os"

	"github.com/bnema/remedy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
