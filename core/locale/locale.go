// Package locale provides the two-language text pairs used across the site.
package locale

import "strings"

// Lang selects the display language.
type Lang string

const (
	RU Lang = "ru"
	EN Lang = "en"
)

// Parse returns the language for a raw query value, defaulting to Russian.
func Parse(s string) Lang {
	if strings.EqualFold(s, string(EN)) {
		return EN
	}
	return RU
}

// Text is a localized string pair.
type Text struct {
	RU string `json:"ru"`
	EN string `json:"en"`
}

// Get returns the text for the given language.
func (t Text) Get(lang Lang) string {
	if lang == EN {
		return t.EN
	}
	return t.RU
}

// Lines is a localized list of strings.
type Lines struct {
	RU []string `json:"ru"`
	EN []string `json:"en"`
}

// Get returns the lines for the given language.
func (l Lines) Get(lang Lang) []string {
	if lang == EN {
		return l.EN
	}
	return l.RU
}
