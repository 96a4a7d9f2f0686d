// main is the entry point for the shotdash CLI.
package main

import (
	"github.com/huangsam/shotdash/cmd"
	"github.com/huangsam/shotdash/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run shotdash", err)
	}
}
