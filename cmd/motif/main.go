package main

import (
	"os"

	"github.com/vsariola/motif/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
