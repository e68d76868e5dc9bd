package main

import (
	"os"

	"github.com/dshills/revu/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
