// Package main - Entry point for the mysite CLI
package main

import (
	"fmt"
	"os"

	"github.com/MaRkS1234567/MySite-web/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
