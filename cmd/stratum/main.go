package main

import (
	"fmt"
	"os"

	"github.com/toyz/stratum/internal/errors"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
