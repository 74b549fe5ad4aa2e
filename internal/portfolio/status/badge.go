package status

import (
	"errors"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/locale"
	"golang.org/x/text/language"
)

var ErrInvalidStatus = errors.New("invalid status")

// Badge is everything the UI needs to render a status pill.
type Badge struct {
	Status     domain.Status `json:"status"`
	Label      string        `json:"label"`
	Text       string        `json:"text_class"`
	Background string        `json:"bg_class"`
}

type style struct {
	text, bg string
	pt, en   string
}

var styles = map[domain.Status]style{
	domain.StatusActive: {text: "text-blue-500", bg: "bg-blue-200 hover:bg-blue-300", pt: "Ativo", en: "Active"},
	domain.StatusLate:   {text: "text-red-500", bg: "bg-red-200 hover:bg-red-300", pt: "Atrasado", en: "Late"},
	domain.StatusDone:   {text: "text-green-500", bg: "bg-green-200 hover:bg-green-300", pt: "Concluído", en: "Done"},
}

// For returns the badge of s in the given language.
func For(s domain.Status, tag language.Tag) (Badge, error) {
	st, ok := styles[s]
	if !ok {
		return Badge{}, ErrInvalidStatus
	}
	label := st.pt
	if locale.IsEnglish(tag) {
		label = st.en
	}
	return Badge{Status: s, Label: label, Text: st.text, Background: st.bg}, nil
}

// All returns the badges of every known status in display order.
func All(tag language.Tag) []Badge {
	out := make([]Badge, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		b, _ := For(s, tag)
		out = append(out, b)
	}
	return out
}

// InvalidMessage is shown in place of a badge for an unknown status.
func InvalidMessage(tag language.Tag) string {
	if locale.IsEnglish(tag) {
		return "Invalid status!"
	}
	return "Status inválido!"
}
