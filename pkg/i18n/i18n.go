// Package i18n serves the ru/kz dashboard dictionaries.
package i18n

import (
	"embed"
	"fmt"
	"sort"

	"go.yaml.in/yaml/v4"
)

//go:embed locales/*.yaml
var locales embed.FS

// Fallback is the language every missing key falls back to.
const Fallback = "ru"

var supported = []string{"ru", "kz"}

type Bundle struct {
	dict map[string]map[string]string
}

// Load parses the embedded dictionaries.
func Load() (*Bundle, error) {
	b := &Bundle{dict: make(map[string]map[string]string, len(supported))}
	for _, lang := range supported {
		raw, err := locales.ReadFile("locales/" + lang + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		m := map[string]string{}
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		b.dict[lang] = m
	}
	return b, nil
}

// MustLoad panics if the embedded dictionaries are broken.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Supported reports whether lang has a dictionary.
func (b *Bundle) Supported(lang string) bool {
	_, ok := b.dict[lang]
	return ok
}

func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.dict))
	for l := range b.dict {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// T looks key up in lang, then in the fallback, and finally returns key itself.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := b.dict[Fallback][key]; ok {
		return v
	}
	return key
}
