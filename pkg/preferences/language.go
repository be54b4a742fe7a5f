package preferences

import (
	"context"
	"errors"
	"strings"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// LanguageChecker says which languages have dictionaries.
type LanguageChecker interface {
	Supported(lang string) bool
}

// Languages stores the dashboard language per operator.
type Languages struct {
	reg      *Registry
	langs    LanguageChecker
	fallback string
}

func NewLanguages(reg *Registry, langs LanguageChecker, fallback string) *Languages {
	return &Languages{reg: reg, langs: langs, fallback: fallback}
}

func languageKey(operator string) string { return "lang:" + strings.ToLower(operator) }

// Get returns the operator's language or the fallback.
func (l *Languages) Get(operator string) string {
	if v, ok := l.reg.Get(languageKey(operator)); ok && l.langs.Supported(v) {
		return v
	}
	return l.fallback
}

func (l *Languages) Set(ctx context.Context, operator, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !l.langs.Supported(lang) {
		return ErrUnsupportedLanguage
	}
	return l.reg.Set(ctx, languageKey(operator), lang)
}
