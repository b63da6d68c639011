package main

import (
	"fmt"
	"os"

	"github.com/matzehuels/pinboard/internal/cli"
	"github.com/matzehuels/pinboard/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
