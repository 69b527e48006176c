// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for manytime using Cobra.
// It loads configuration and ciphertexts, runs automatic key recovery, and
// hands the result to the terminal UI. CLI code stays thin and delegates to
// the core packages.
package cli
