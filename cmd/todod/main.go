package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/todod/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "todod failed: %v\n", err)
		os.Exit(1)
	}
}
