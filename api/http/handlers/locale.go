package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/pkg/security/jwt"
)

// Translator resolves dictionary keys.
type Translator interface {
	T(lang, key string) string
}

// LanguageSource returns the operator's dashboard language.
type LanguageSource interface {
	Get(operator string) string
}

// Localizer renders labels and error messages in the caller's language.
type Localizer struct {
	dict  Translator
	langs LanguageSource
}

func NewLocalizer(dict Translator, langs LanguageSource) *Localizer {
	return &Localizer{dict: dict, langs: langs}
}

func operator(c *fiber.Ctx) string {
	op, _ := c.Locals(jwt.LocalOperator).(string)
	return op
}

func (l *Localizer) Lang(c *fiber.Ctx) string {
	return l.langs.Get(operator(c))
}

func (l *Localizer) T(c *fiber.Ctx, key string) string {
	return l.dict.T(l.Lang(c), key)
}
