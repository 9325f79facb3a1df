package main

import (
	"os"

	"llamagate-demo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
