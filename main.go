// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Manytime.
//
// Usage:
//
//	go run . [flags] <ciphertext-file>
//	./manytime [flags] <ciphertext-file>
//
// This launches the Manytime CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/manytime/internal/logging"
	"github.com/toeirei/manytime/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
