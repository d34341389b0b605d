// Package slug deriva identificadores legibles a partir de texto libre.
// Es la única fuente de IDs para instalaciones (desde el nombre) y
// administradores (desde la parte local del email). No hay garantía de
// unicidad: dos nombres que produzcan el mismo slug colisionan y el
// llamador debe tolerarlo.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD), elimina marcas diacríticas y recompone.
// "Medellín" → "Medellin" antes de aplastar a slug.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make convierte texto libre en un slug: minúsculas, tildes fuera,
// corridas de caracteres no alfanuméricos colapsadas a "-", y sin
// guiones al inicio ni al final. "ATL South" → "atl-south".
func Make(text string) string {
	folded, _, err := transform.String(stripAccents, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FromEmail deriva un identificador desde la parte local del email
// (caracteres antes de la primera "@"). "dana@stowlog.com" → "dana".
func FromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return Make(local)
}
