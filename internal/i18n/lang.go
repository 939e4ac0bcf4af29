// Package i18n holds the two display languages of the dashboard, the
// projection that picks between them, and the shared language context.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a display language tag.
type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

// Parse resolves a BCP 47 tag to a supported language. Regional variants
// ("ar-SA") map to their base; anything unknown is English.
func Parse(tag string) Lang {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return EN
	}
	t, err := language.Parse(tag)
	if err != nil {
		return EN
	}
	base, _ := t.Base()
	if base.String() == string(AR) {
		return AR
	}
	return EN
}

// Valid reports whether s is exactly one of the supported tags.
func Valid(s string) bool {
	return s == string(EN) || s == string(AR)
}

// Project returns the Arabic text when lang is Arabic, the English text otherwise.
func Project(en, ar string, lang Lang) string {
	if lang == AR {
		return ar
	}
	return en
}

// Dir returns the text direction for lang: "rtl" or "ltr".
func Dir(lang Lang) string {
	if lang == AR {
		return "rtl"
	}
	return "ltr"
}

// Toggle returns the other language.
func Toggle(lang Lang) Lang {
	if lang == AR {
		return EN
	}
	return AR
}
