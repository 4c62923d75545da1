package application

import "strings"

const (
	ErrorCodeInterfaceRemoved = "IF_DOWN_INTERFACE_REMOVED"
	ErrorCodeLinkFailure      = "IF_DOWN_LINK_FAILURE"
)

type RegistryEntry struct {
	Pattern string
	Routine Routine
}

// Registry maps error codes to routines. Entries are checked in order and the
// first pattern contained in the error code wins.
type Registry struct {
	entries []RegistryEntry
}

func NewRegistry(entries ...RegistryEntry) *Registry {
	return &Registry{entries: append([]RegistryEntry(nil), entries...)}
}

// DefaultRegistry wires the linecard and link routines.
func DefaultRegistry() *Registry {
	return NewRegistry(
		RegistryEntry{Pattern: ErrorCodeInterfaceRemoved, Routine: LinecardRoutine{}},
		RegistryEntry{Pattern: ErrorCodeLinkFailure, Routine: LinkRoutine{}},
	)
}

func (r *Registry) Match(errorCode string) (Routine, bool) {
	for _, entry := range r.entries {
		if entry.Pattern != "" && strings.Contains(errorCode, entry.Pattern) {
			return entry.Routine, true
		}
	}

	return nil, false
}

// Patterns returns the registered error code patterns in match order.
func (r *Registry) Patterns() []string {
	patterns := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		patterns = append(patterns, entry.Pattern)
	}

	return patterns
}
