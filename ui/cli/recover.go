// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/toeirei/manytime/internal/core/ciphertext"
	"github.com/toeirei/manytime/internal/core/decrypt"
	"github.com/toeirei/manytime/internal/core/export"
	"github.com/toeirei/manytime/internal/core/key"
	"github.com/toeirei/manytime/internal/i18n"
)

// newRecoverCmd runs automatic recovery only and prints the result.
func newRecoverCmd() *cobra.Command {
	var doExport bool
	cmd := &cobra.Command{
		Use:   "recover <ciphertext-file>",
		Short: "Recover the key non-interactively and print the partial decryptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			set, k, err := loadAndRecover(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			if err := printState(cmd.OutOrStdout(), set, k, c.PlaceholderRune()); err != nil {
				return err
			}
			if !doExport {
				return nil
			}
			if err := export.NewWriter(c.PlaceholderRune()).Export(set, k, c.Output); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.exported", c.Output))
			return err
		},
	}
	cmd.Flags().BoolVar(&doExport, "export", false, "Also write the export artifact to --output")
	return cmd
}

// printState writes the key and one numbered line per decryption.
func printState(w io.Writer, set *ciphertext.Set, k *key.Key, placeholder rune) error {
	if _, err := fmt.Fprintf(w, "%s: %s\n", i18n.T("box.key"), k.PlainWith(placeholder)); err != nil {
		return err
	}
	width := len(fmt.Sprint(set.Len()))
	for i := 0; i < set.Len(); i++ {
		row := decrypt.Decrypt(k, set.At(i), placeholder)
		for j, r := range row {
			row[j] = decrypt.Printable(r)
		}
		if _, err := fmt.Fprintf(w, "%*d  %s\n", width, i+1, string(row)); err != nil {
			return err
		}
	}
	return nil
}
