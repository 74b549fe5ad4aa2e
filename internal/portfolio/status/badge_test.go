package status_test

import (
	"testing"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFor(t *testing.T) {
	tests := []struct {
		status domain.Status
		tag    language.Tag
		want   status.Badge
	}{
		{domain.StatusActive, language.BrazilianPortuguese, status.Badge{Status: "active", Label: "Ativo", Text: "text-blue-500", Background: "bg-blue-200 hover:bg-blue-300"}},
		{domain.StatusLate, language.BrazilianPortuguese, status.Badge{Status: "late", Label: "Atrasado", Text: "text-red-500", Background: "bg-red-200 hover:bg-red-300"}},
		{domain.StatusDone, language.BrazilianPortuguese, status.Badge{Status: "done", Label: "Concluído", Text: "text-green-500", Background: "bg-green-200 hover:bg-green-300"}},
		{domain.StatusDone, language.English, status.Badge{Status: "done", Label: "Done", Text: "text-green-500", Background: "bg-green-200 hover:bg-green-300"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+tt.tag.String(), func(t *testing.T) {
			got, err := status.For(tt.status, tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFor_Invalid(t *testing.T) {
	_, err := status.For("paused", language.BrazilianPortuguese)
	assert.ErrorIs(t, err, status.ErrInvalidStatus)

	assert.Equal(t, "Status inválido!", status.InvalidMessage(language.BrazilianPortuguese))
	assert.Equal(t, "Invalid status!", status.InvalidMessage(language.English))
}

func TestAll(t *testing.T) {
	badges := status.All(language.English)
	require.Len(t, badges, len(domain.Statuses))
	for i, b := range badges {
		assert.Equal(t, domain.Statuses[i], b.Status)
		assert.NotEmpty(t, b.Label)
	}
}
