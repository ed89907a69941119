package main

import (
	"fmt"
	"os"

	"github.com/tenghoit/csc380-s26/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
