package main

import (
	"os"

	"github.com/filter-today/filterctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
