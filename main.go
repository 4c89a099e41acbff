package main

import (
	"os"

	"github.com/abhisek/formcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
