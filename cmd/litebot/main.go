package main

import (
	"os"

	"github.com/bnema/litebot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
