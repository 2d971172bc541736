// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// i18n-linter checks the locale files against the Go sources. It reports keys
// that are used but not defined in the English locale, keys missing from the
// other locales and English keys that no code refers to.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") and key-like literals, e.g. in a slice of bullet ids
	keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z._]+)"`)
	// i18n.T("timestamp.unit." + ...) marks every key below the prefix as used
	prefixRe = regexp.MustCompile(`i18n\.T\("([a-z._]+\.)"\s*\+`)
)

// usage holds the keys found in the sources. calls are the arguments of
// i18n.T, literals only look like keys and may be anything with a dot.
type usage struct {
	calls    map[string]struct{}
	literals map[string]struct{}
	prefixes []string
}

func (u usage) uses(key string) bool {
	if _, ok := u.calls[key]; ok {
		return true
	}
	if _, ok := u.literals[key]; ok {
		return true
	}
	for _, p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// report is the outcome of one lint run.
type report struct {
	// Undefined are keys passed to i18n.T that the primary locale lacks.
	Undefined []string
	// Missing maps a secondary locale file to the primary keys it lacks.
	Missing map[string][]string
	// Orphaned are primary keys nothing uses.
	Orphaned []string
}

// Failed reports whether the run found errors. Orphans are only a warning.
func (r report) Failed() bool {
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
	printReport(os.Stdout, r)
	if r.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}

	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	for key := range used.calls {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if !used.uses(key) {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", filepath.Base(file), err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.Missing[filepath.Base(file)] = missing
	}
	return r, nil
}

func printReport(w io.Writer, r report) {
	section := func(title string, keys []string, label string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s: %s\n", label, k)
		}
	}

	section("Used but not defined in "+primaryLocale, r.Undefined, "undefined")

	names := make([]string, 0, len(r.Missing))
	for name := range r.Missing {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		section("Missing in "+name, r.Missing[name], "missing")
	}

	section("Orphaned in "+primaryLocale, r.Orphaned, "orphaned")

	switch {
	case r.Failed():
		fmt.Fprintln(w, "FAIL: locale files are inconsistent")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "WARN: orphaned keys found, consider removing them")
	default:
		fmt.Fprintln(w, "OK: all translation files are consistent")
	}
}

// findUsedKeys scans the non-test .go files below root, skipping tools/ and
// directories starting with "_" or ".".
func findUsedKeys(root string) (usage, error) {
	u := usage{calls: map[string]struct{}{}, literals: map[string]struct{}{}}
	seen := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
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
		for _, m := range keyRe.FindAllStringSubmatch(string(content), -1) {
			switch {
			case strings.HasSuffix(m[1], "."):
				// a prefix, see prefixRe
			case m[1] != "":
				u.calls[m[1]] = struct{}{}
			case m[2] != "":
				u.literals[m[2]] = struct{}{}
			}
		}
		for _, m := range prefixRe.FindAllStringSubmatch(string(content), -1) {
			if _, dup := seen[m[1]]; !dup {
				seen[m[1]] = struct{}{}
				u.prefixes = append(u.prefixes, m[1])
			}
		}
		return nil
	})
	sort.Strings(u.prefixes)
	return u, err
}

// loadKeysFromLocale reads a go-i18n YAML file and returns its message ids.
// Nested maps are flattened with dots.
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

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, v, keys)
	}
}
