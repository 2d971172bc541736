// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package i18n provides the translated UI strings of Little Tools. It uses the
// go-i18n library over YAML locale files embedded into the binary. The date
// layout of a locale is a message as well (see DateLayout).
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	supported []language.Tag
)

// Init loads all embedded locales and selects the best match for lang.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	// English first, the matcher treats the first tag as its fallback
	supported = []language.Tag{language.English}
	for _, tag := range bundle.LanguageTags() {
		if tag != language.English {
			supported = append(supported, tag)
		}
	}
	current = Match(lang)
	localizer = i18n.NewLocalizer(bundle, current)
}

// Match returns the supported locale closest to lang, e.g. "de-AT" or
// "de_DE.UTF-8" become "de". Unknown languages fall back to English.
func Match(lang string) string {
	if bundle == nil {
		Init("en")
	}
	// strip POSIX locale suffixes such as ".UTF-8" or "@euro"
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")

	tag, err := language.Parse(lang)
	if err != nil {
		return language.English.String()
	}
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return language.English.String()
	}
	base, _ := supported[index].Base()
	return base.String()
}

// T translates messageID. Extra args are applied fmt-style. If the message is
// unknown the ID itself is returned.
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

// DateLayout is the Go reference layout used to render dates in the active
// locale.
func DateLayout() string {
	layout := T("date.layout")
	if layout == "date.layout" {
		return "2006-01-02 15:04:05 MST"
	}
	return layout
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active locale.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// GetAvailableLocales maps each embedded locale to its own display name.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string, len(supported))
	for _, tag := range supported {
		out[tag.String()] = display.Self.Name(tag)
	}
	return out
}
