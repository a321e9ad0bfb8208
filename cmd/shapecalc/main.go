// Command shapecalc computes areas and volumes of validated shapes.
package main

import (
	"os"

	"github.com/katalvlaran/shapecalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
