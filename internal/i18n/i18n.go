// Package i18n resolves message keys and seat-position labels to display
// strings. It only shapes response payloads; no business decision depends
// on it.
package i18n

import (
	"fmt"
	"strings"

	"sitzy/internal/models"
)

const (
	LangCzech   = "cs"
	LangEnglish = "en"
)

type Localizer struct {
	defaultLang string
	supported   map[string]bool
}

func NewLocalizer(defaultLang string) *Localizer {
	supported := map[string]bool{
		LangCzech:   true,
		LangEnglish: true,
	}
	if !supported[defaultLang] {
		defaultLang = LangCzech
	}
	return &Localizer{
		defaultLang: defaultLang,
		supported:   supported,
	}
}

// Normalize reduces an Accept-Language style value to a supported language
// code, falling back to the configured default.
func (l *Localizer) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, ",;-"); i >= 0 {
		lang = lang[:i]
	}
	if l.supported[lang] {
		return lang
	}
	return l.defaultLang
}

// Message resolves a catalog key for the given language. Unknown keys come
// back marked so they are easy to spot in a client.
func (l *Localizer) Message(key, lang string) string {
	translations, ok := messages[key]
	if !ok {
		return "!!" + key + "!!"
	}
	if msg, ok := translations[l.Normalize(lang)]; ok {
		return msg
	}
	return translations[l.defaultLang]
}

// PositionLabel resolves a (layout, position) pair to a human-readable seat
// label. Positions outside the known table fall back to a numbered label.
func (l *Localizer) PositionLabel(layout models.CarLayout, position int, lang string) string {
	lang = l.Normalize(lang)
	if byPosition, ok := positionLabels[layout]; ok {
		if label, ok := byPosition[position]; ok {
			if s, ok := label[lang]; ok {
				return s
			}
			return label[l.defaultLang]
		}
	}
	if lang == LangCzech {
		return fmt.Sprintf("Místo %d", position)
	}
	return fmt.Sprintf("Seat %d", position)
}
