package main

import (
	"os"

	"github.com/SscSPs/tax_liability_app/internal/platform/config"
)

func main() {
	if err := newRootCmd(config.LoadTaxPolicy).Execute(); err != nil {
		os.Exit(1)
	}
}
