// Package main provides the CLI entrypoint for shopkeeper.
//
// shopkeeper compiles a YAML shop config into a trade catalog:
//   - check validates the config and prints every diagnostic
//   - list and show print the compiled shops and their recipes
//   - create and delete edit the config file in place
//   - watch keeps the catalog reloaded while the file is edited
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
