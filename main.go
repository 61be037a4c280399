package main

import (
	"os"

	"github.com/andreixhz/tools-cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
