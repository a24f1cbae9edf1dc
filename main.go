package main

import (
	"os"

	"github.com/thanvish21/systemx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
