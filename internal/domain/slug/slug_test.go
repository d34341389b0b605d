package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stowlog/backoffice-api/internal/domain/slug"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Make — derivación de slug desde texto libre
// ──────────────────────────────────────────────────────────────────────────────

func TestMake_NombreSimple(t *testing.T) {
	assert.Equal(t, "atl-south", slug.Make("ATL South"),
		"el nombre debe bajar a minúsculas con espacios convertidos en guiones")
}

func TestMake_CorridasNoAlfanumericasColapsan(t *testing.T) {
	assert.Equal(t, "stowlog-stl-north", slug.Make("Stowlog -- STL  / North"),
		"corridas de caracteres no alfanuméricos deben colapsar a un solo guion")
}

func TestMake_SinGuionesEnExtremos(t *testing.T) {
	assert.Equal(t, "mia-hub", slug.Make("  (MIA Hub)  "),
		"no debe haber guiones al inicio ni al final")
}

func TestMake_Tildes(t *testing.T) {
	assert.Equal(t, "bodega-medellin", slug.Make("Bodega Medellín"),
		"las tildes deben eliminarse antes de formar el slug")
}

func TestMake_DigitosSeConservan(t *testing.T) {
	assert.Equal(t, "hub-42-este", slug.Make("Hub 42 Este"))
}

func TestMake_TextoVacio(t *testing.T) {
	assert.Equal(t, "", slug.Make(""))
	assert.Equal(t, "", slug.Make("   "), "solo espacios produce slug vacío")
}

// Make no deduplica: dos nombres distintos pueden producir el mismo slug.
// El comportamiento es deliberado (lo resuelve quien llama, si le importa).
func TestMake_ColisionesPosibles(t *testing.T) {
	assert.Equal(t, slug.Make("ATL South"), slug.Make("atl  south!"),
		"nombres distintos con el mismo contenido alfanumérico colisionan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FromEmail — identificador desde la parte local del email
// ──────────────────────────────────────────────────────────────────────────────

func TestFromEmail_ParteLocal(t *testing.T) {
	assert.Equal(t, "dana", slug.FromEmail("dana@stowlog.com"),
		"el id debe ser la parte local del email")
}

func TestFromEmail_PuntosColapsanAGuion(t *testing.T) {
	assert.Equal(t, "alice-cooper", slug.FromEmail("alice.cooper@stowlog.com"))
}

func TestFromEmail_SinArroba(t *testing.T) {
	assert.Equal(t, "brian", slug.FromEmail("brian"),
		"sin arroba se usa el texto completo como parte local")
}
