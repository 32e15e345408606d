package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Edward Snowden", "edward-snowden"},
		{"accents folded", "Hervé Falciani", "herve-falciani"},
		{"cedilla", "Garçon Démodé", "garcon-demode"},
		{"punctuation collapses", "NSA/PRISM", "nsa-prism"},
		{"parentheses and dots", "PwC (PricewaterhouseCoopers)", "pwc-pricewaterhousecoopers"},
		{"apostrophe", "Lanceur d'alerte", "lanceur-d-alerte"},
		{"leading and trailing junk", "  --Projet Pegasus!  ", "projet-pegasus"},
		{"digits kept", "Article 40", "article-40"},
		{"runs collapse to one hyphen", "a   &   b", "a-b"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	for _, in := range []string{"Edward Snowden", "Révélations sur la NSA", "LuxLeaks"} {
		once := Make(in)
		assert.Equal(t, once, Make(once))
	}
}
