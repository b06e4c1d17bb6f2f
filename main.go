package main

import (
	"os"

	"github.com/lawyerdirect/lawadmin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
