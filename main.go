package main

import (
	"fmt"
	"os"

	"github.com/typefall/marquee/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}
