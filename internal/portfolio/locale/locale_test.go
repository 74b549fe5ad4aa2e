package locale_test

import (
	"testing"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/locale"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.BrazilianPortuguese},
		{"pt-BR,pt;q=0.9", language.BrazilianPortuguese},
		{"en-US,en;q=0.8", language.English},
		{"fr-FR;q=0.9, en;q=0.5", language.English},
		{"de", language.BrazilianPortuguese},
		{";;garbage", language.BrazilianPortuguese},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Match(tt.header))
		})
	}
}

func TestIsEnglish(t *testing.T) {
	assert.True(t, locale.IsEnglish(language.English))
	assert.True(t, locale.IsEnglish(language.AmericanEnglish))
	assert.False(t, locale.IsEnglish(language.BrazilianPortuguese))
}
