// Package language provides claim-text normalization: trigram-based
// language detection plus a fail-open translation collaborator.
package language

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// Detector identifies the language of submitted claim text. Detection
// is a hint for translation and source routing, never a hard gate:
// anything the underlying model cannot call reliably falls back to
// English.
type Detector struct{}

// NewDetector creates a language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the ISO-639 base code for the text's language, or
// "en" when nothing can be said reliably.
func (d *Detector) Detect(text string) string {
	if !hasLetter(text) {
		return "en"
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "en"
	}

	// whatlanggo speaks ISO 639-3; collapse to the canonical base tag
	// ("spa" -> "es", "hin" -> "hi") so the translator and the
	// per-language wiki host get the short form.
	tag, err := language.Parse(whatlanggo.LangToString(info.Lang))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

func hasLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
