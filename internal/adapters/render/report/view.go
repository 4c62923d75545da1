package report

import (
	"fmt"
	"strings"

	"github.com/bnema/remedy/internal/application"
	"github.com/bnema/remedy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var classificationOrder = []domain.Classification{
	domain.ClassificationHealthy,
	domain.ClassificationSuspect,
	domain.ClassificationFaulty,
	domain.ClassificationIndeterminate,
}

// RenderOutcomes renders a remediation report, one section per event.
func RenderOutcomes(outcomes []application.Outcome) (string, error) {
	return run(func(s styles) string {
		return outcomesView(outcomes, s)
	})
}

// RenderEvents renders stored events as a table.
func RenderEvents(events []domain.Event) (string, error) {
	return run(func(s styles) string {
		return eventsView(events, s)
	})
}

func outcomesView(outcomes []application.Outcome, s styles) string {
	lines := []string{
		s.title.Render("Remediation Report"),
		s.header.Render(fmt.Sprintf("events: %d", len(outcomes))),
	}

	if len(outcomes) == 0 {
		lines = append(lines, s.empty.Render("No events to remediate."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, tally(outcomes, s))
	for _, outcome := range outcomes {
		lines = append(lines, s.section.Render(outcomeView(outcome, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tally(outcomes []application.Outcome, s styles) string {
	counts := map[domain.Classification]int{}
	skipped := 0
	for _, outcome := range outcomes {
		if outcome.Skipped || outcome.Verdict.Classification == "" {
			skipped++
			continue
		}
		counts[outcome.Verdict.Classification]++
	}

	parts := make([]string, 0, len(classificationOrder)+1)
	for _, classification := range classificationOrder {
		if counts[classification] == 0 {
			continue
		}
		parts = append(parts, s.verdict(classification).Render(fmt.Sprintf("%s %d", classification, counts[classification])))
	}
	if skipped > 0 {
		parts = append(parts, s.empty.Render(fmt.Sprintf("skipped %d", skipped)))
	}

	return strings.Join(parts, s.header.Render(" · "))
}

func outcomeView(outcome application.Outcome, s styles) string {
	event := outcome.Event
	title := s.device.Render(fmt.Sprintf("#%d %s", outcome.EventID, deviceLabel(event.Device)))

	if outcome.Skipped {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			s.empty.Render(fmt.Sprintf("no routine for %s", event.ErrorCode)),
		)
	}

	if outcome.Verdict.Classification == "" {
		reason := "not remediated"
		if outcome.Err != nil {
			reason = outcome.Err.Error()
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, s.verdict(domain.ClassificationIndeterminate).Render(reason))
	}

	verdict := outcome.Verdict
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			title,
			" ",
			s.verdict(verdict.Classification).Render(strings.ToUpper(string(verdict.Classification))),
		),
		s.key.Render(fmt.Sprintf("%s · %s %s", event.ErrorCode, verdict.Routine, verdict.Subject)),
		s.detail.Render(verdict.Diagnosis),
	}
	for _, command := range verdict.Commands {
		parts = append(parts, s.command.Render("  $ "+command))
	}
	if result, ok := verdict.Result(); ok {
		parts = append(parts, s.result(result).Render("result: "+result.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func eventsView(events []domain.Event, s styles) string {
	lines := []string{
		s.title.Render("Events"),
		s.header.Render(fmt.Sprintf("events: %d", len(events))),
	}

	if len(events) == 0 {
		lines = append(lines, s.empty.Render("No events stored."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	idWidth, tsWidth, deviceWidth := 2, 9, 6
	for _, event := range events {
		idWidth = max(idWidth, len(fmt.Sprint(event.ID)))
		tsWidth = max(tsWidth, len(event.Timestamp))
		deviceWidth = max(deviceWidth, len(event.Device))
	}

	row := func(id, ts, device, result, code string) string {
		return fmt.Sprintf("%-*s  %-*s  %-*s  %-21s  %s", idWidth, id, tsWidth, ts, deviceWidth, device, result, code)
	}

	lines = append(lines, s.section.Render(s.key.Render(row("ID", "TIMESTAMP", "DEVICE", "RESULT", "ERROR CODE"))))
	for _, event := range events {
		line := row(fmt.Sprint(event.ID), event.Timestamp, event.Device, event.Result.String(), event.ErrorCode)
		lines = append(lines, s.result(event.Result).Render(line))
		lines = append(lines, s.command.Render(strings.Repeat(" ", idWidth+2)+event.ErrorMessage))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func deviceLabel(device string) string {
	if device == "" {
		return "unknown device"
	}

	return device
}
