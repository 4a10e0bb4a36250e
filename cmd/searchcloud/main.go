package main

import (
	"os"

	"github.com/searchcloud/searchcloud/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
