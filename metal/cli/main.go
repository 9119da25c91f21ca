package main

import (
	"os"

	"github.com/folio/pkg/cli"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}
}
