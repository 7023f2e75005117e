package main

import (
	"os"

	"github.com/mgpai22/substudio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
