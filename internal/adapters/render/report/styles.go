package report

import (
	"github.com/bnema/remedy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	device   lipgloss.Style
	detail   lipgloss.Style
	command  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	key      lipgloss.Style
	verdicts map[domain.Classification]lipgloss.Style
	results  map[domain.Result]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		device:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		verdicts: map[domain.Classification]lipgloss.Style{
			domain.ClassificationHealthy:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			domain.ClassificationSuspect:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
			domain.ClassificationFaulty:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			domain.ClassificationIndeterminate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		},
		results: map[domain.Result]lipgloss.Style{
			domain.ResultUnset:                lipgloss.NewStyle().Faint(true),
			domain.ResultRemediationFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			domain.ResultRemediationCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},
	}
}

func (s styles) verdict(c domain.Classification) lipgloss.Style {
	if style, ok := s.verdicts[c]; ok {
		return style
	}

	return s.detail
}

func (s styles) result(r domain.Result) lipgloss.Style {
	if style, ok := s.results[r]; ok {
		return style
	}

	return s.detail
}
