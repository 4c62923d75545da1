package ports

import "github.com/bnema/remedy/internal/domain"

// LineParser extracts an event identity from one log line. ok is false for
// lines that do not describe an event.
type LineParser interface {
	Parse(line string) (key domain.IdentityKey, ok bool)
}
