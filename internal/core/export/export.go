// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export writes the current decryptions and key to a JSON artifact.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/manytime/internal/core/ciphertext"
	"github.com/toeirei/manytime/internal/core/decrypt"
	"github.com/toeirei/manytime/internal/core/key"
	"github.com/toeirei/manytime/internal/logging"
	"github.com/toeirei/manytime/util/slicest"
)

// DefaultPath is used when no output path is configured.
const DefaultPath = "result.json"

// compressedSuffix selects zstd compression for the artifact.
const compressedSuffix = ".zst"

// Document is the exported artifact.
type Document struct {
	Decryptions []string `json:"decryptions"`
	Key         string   `json:"key"`
}

// Build renders every ciphertext in input order. The placeholder is used once
// per unknown plaintext character and twice per unknown key byte.
func Build(set *ciphertext.Set, k *key.Key, placeholder rune) Document {
	return Document{
		Decryptions: slicest.Map(set.Texts(), func(ct []byte) string {
			return decrypt.String(k, ct, placeholder)
		}),
		Key: k.PlainWith(placeholder),
	}
}

// Encode writes doc as a single line of JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Writer persists documents to disk.
type Writer struct {
	Placeholder rune
	Perm        os.FileMode
}

// NewWriter returns a Writer with the default placeholder and a private
// file mode. On Windows, where POSIX permissions are not meaningful, it
// falls back to 0644.
func NewWriter(placeholder rune) *Writer {
	if placeholder == 0 {
		placeholder = key.DefaultPlaceholder
	}
	perm := os.FileMode(0600)
	if runtime.GOOS == "windows" {
		perm = 0644
	}
	return &Writer{Placeholder: placeholder, Perm: perm}
}

// Export builds the document and writes it to path. The previous file at
// path is only replaced once the new content is fully written.
func (w *Writer) Export(set *ciphertext.Set, k *key.Key, path string) error {
	if path == "" {
		path = DefaultPath
	}
	doc := Build(set, k, w.Placeholder)
	if err := w.write(path, doc); err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}
	logging.Infof("exported %d decryptions (%d/%d key bytes known) to %s",
		len(doc.Decryptions), k.KnownCount(), k.Len(), path)
	return nil
}

func (w *Writer) write(path string, doc Document) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if strings.HasSuffix(path, compressedSuffix) {
		zw, zerr := zstd.NewWriter(tmp)
		if zerr != nil {
			return fmt.Errorf("could not create zstd writer: %w", zerr)
		}
		if err = Encode(zw, doc); err != nil {
			_ = zw.Close()
			return err
		}
		if err = zw.Close(); err != nil {
			return err
		}
	} else if err = Encode(tmp, doc); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, w.Perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Read loads an exported document, decompressing .zst files.
func Read(path string) (Document, error) {
	var doc Document
	f, err := os.Open(path)
	if err != nil {
		return doc, err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, compressedSuffix) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return doc, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("could not decode export: %w", err)
	}
	return doc, nil
}
