// Command feectl quotes shipments, runs the storage accrual batch and
// manages the pricing zone catalog from the terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
