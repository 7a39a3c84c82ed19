package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "inkwell error: %v\n", err)
		os.Exit(1)
	}
}
