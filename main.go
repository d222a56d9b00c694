package main

import (
	"os"

	"github.com/asaleem9/folio/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
