// Package main provides the stygen CLI tool for generating the FontAwesome 5
// XeLaTeX style file and linting icon usage in TeX sources.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
