package main

import (
	"os"

	"watcherknight/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
