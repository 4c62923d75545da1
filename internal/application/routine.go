package application

import (
	"context"
	"regexp"

	"github.com/bnema/remedy/internal/domain"
)

var interfacePattern = regexp.MustCompile(`(\d+)/(\d+)`)

// Querier runs commands against the device a routine is diagnosing.
type Querier interface {
	Query(ctx context.Context, commands ...string) ([]string, error)
}

// Finding is a routine's conclusion before the engine stamps run metadata.
type Finding struct {
	Classification domain.Classification
	Diagnosis      string
}

// Routine diagnoses one class of device error.
type Routine interface {
	Name() string
	// Subject extracts the module or interface the error message is about.
	Subject(errorMessage string) (string, error)
	Diagnose(ctx context.Context, q Querier, device, subject string) (Finding, error)
}
