package main

import (
	"fmt"
	"os"

	"gamechain/cmd/dexsim/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
