package main

import (
	"os"

	"github.com/ravikantcool2024/sindri/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
