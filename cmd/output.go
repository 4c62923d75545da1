package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/remedy/internal/adapters/render/report"
	"github.com/bnema/remedy/internal/application"
	"github.com/bnema/remedy/internal/domain"
)

type outcomeJSON struct {
	EventID        int64    `json:"event_id"`
	Timestamp      string   `json:"timestamp,omitempty"`
	Device         string   `json:"device,omitempty"`
	ErrorCode      string   `json:"error_code,omitempty"`
	RunID          string   `json:"run_id,omitempty"`
	Routine        string   `json:"routine,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	Classification string   `json:"classification,omitempty"`
	Diagnosis      string   `json:"diagnosis,omitempty"`
	Commands       []string `json:"commands"`
	Result         string   `json:"result"`
	Skipped        bool     `json:"skipped"`
	Error          string   `json:"error,omitempty"`
}

type eventJSON struct {
	ID           int64  `json:"id"`
	Timestamp    string `json:"timestamp"`
	Device       string `json:"device"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Result       string `json:"result"`
	ObservedAt   string `json:"observed_at,omitempty"`
}

func writeOutcomes(w io.Writer, outcomes []application.Outcome, asJSON bool) error {
	if asJSON {
		payload := make([]outcomeJSON, 0, len(outcomes))
		for _, outcome := range outcomes {
			payload = append(payload, toOutcomeJSON(outcome))
		}
		return encodeJSON(w, payload)
	}

	rendered, err := report.RenderOutcomes(outcomes)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}

func writeEvents(w io.Writer, events []domain.Event, asJSON bool) error {
	if asJSON {
		payload := make([]eventJSON, 0, len(events))
		for _, event := range events {
			entry := eventJSON{
				ID:           int64(event.ID),
				Timestamp:    event.Timestamp,
				Device:       event.Device,
				ErrorCode:    event.ErrorCode,
				ErrorMessage: event.ErrorMessage,
				Result:       event.Result.String(),
			}
			if !event.ObservedAt.IsZero() {
				entry.ObservedAt = event.ObservedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
			}
			payload = append(payload, entry)
		}
		return encodeJSON(w, payload)
	}

	rendered, err := report.RenderEvents(events)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}

func toOutcomeJSON(outcome application.Outcome) outcomeJSON {
	entry := outcomeJSON{
		EventID:        int64(outcome.EventID),
		Timestamp:      outcome.Event.Timestamp,
		Device:         outcome.Event.Device,
		ErrorCode:      outcome.Event.ErrorCode,
		RunID:          outcome.Verdict.RunID,
		Routine:        outcome.Verdict.Routine,
		Subject:        outcome.Verdict.Subject,
		Classification: string(outcome.Verdict.Classification),
		Diagnosis:      outcome.Verdict.Diagnosis,
		Commands:       append([]string{}, outcome.Verdict.Commands...),
		Result:         outcome.Event.Result.String(),
		Skipped:        outcome.Skipped,
	}
	if outcome.Err != nil {
		entry.Error = outcome.Err.Error()
	}

	return entry
}

func encodeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
