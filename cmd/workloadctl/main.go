// Command workloadctl is the operator tool for the teaching workload service.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "workloadctl: %v\n", err)
		os.Exit(1)
	}
}
