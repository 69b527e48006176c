// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the i18n.T calls in the
// source tree. Keys used in code but absent from the primary locale, and
// keys absent from any secondary locale, fail the run. Unused keys only
// produce a warning.
//
// Usage:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// report is the outcome of one lint run.
type report struct {
	Undefined []string            // used in code, missing from the primary locale
	Orphaned  []string            // defined in the primary locale, never used
	Missing   map[string][]string // secondary locale file -> keys it lacks
}

func (r report) failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	writeReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("load %s: %w", primaryLocale, err)
	}

	r := report{Missing: map[string][]string{}}
	r.Undefined = difference(used, primary)
	r.Orphaned = difference(primary, used)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("load %s: %w", file, err)
		}
		r.Missing[filepath.Base(file)] = difference(primary, keys)
	}
	return r, nil
}

func writeReport(w io.Writer, r report) {
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Used but undefined", r.Undefined)
	section("Defined but unused", r.Orphaned)

	names := make([]string, 0, len(r.Missing))
	for name := range r.Missing {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		section("Missing from "+name, r.Missing[name])
	}
}

// findUsedKeys scans non-test .go files under root for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys. go-i18n accepts
// both the flat "a.b" form and nested maps.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, v, keys)
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
