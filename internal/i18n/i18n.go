// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated user-facing strings. Translation files
// are embedded YAML documents loaded with go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	available []string
)

// Init loads every embedded locale and selects lang. Unknown languages fall
// back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	available = available[:0]
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		available = append(available, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(available)

	current = "en"
	for _, a := range available {
		if a == lang {
			current = lang
		}
	}
	localizer = i18n.NewLocalizer(bundle, current)
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// GetAvailableLocales maps each embedded locale code to its own-language name.
func GetAvailableLocales() map[string]string {
	if localizer == nil {
		Init("en")
	}
	out := make(map[string]string, len(available))
	for _, code := range available {
		tag := language.Make(code)
		out[code] = display.Self.Name(tag)
	}
	return out
}

// T translates messageID. Extra args are applied with fmt.Sprintf to the
// translated text. Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
