package main

import (
	"os"

	"github.com/mytheresa/storefront/app/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
