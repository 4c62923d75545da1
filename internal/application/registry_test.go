package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryMatchesBySubstring(t *testing.T) {
	registry := DefaultRegistry()

	routine, ok := registry.Match("ETHPORT-5-IF_DOWN_INTERFACE_REMOVED")
	require.True(t, ok)
	assert.Equal(t, "linecard", routine.Name())

	routine, ok = registry.Match("ETH_PORT_CHANNEL-5-IF_DOWN_LINK_FAILURE")
	require.True(t, ok)
	assert.Equal(t, "link", routine.Name())

	_, ok = registry.Match("ETHPORT-5-IF_UP")
	assert.False(t, ok)
}

func TestRegistryFirstEntryWins(t *testing.T) {
	registry := NewRegistry(
		RegistryEntry{Pattern: "IF_DOWN", Routine: LinkRoutine{}},
		RegistryEntry{Pattern: ErrorCodeInterfaceRemoved, Routine: LinecardRoutine{}},
	)

	routine, ok := registry.Match("ETHPORT-5-IF_DOWN_INTERFACE_REMOVED")
	require.True(t, ok)
	assert.Equal(t, "link", routine.Name())
	assert.Equal(t, []string{"IF_DOWN", ErrorCodeInterfaceRemoved}, registry.Patterns())
}

func TestRegistryIsNotAffectedByCallerSlice(t *testing.T) {
	entries := []RegistryEntry{{Pattern: ErrorCodeLinkFailure, Routine: LinkRoutine{}}}
	registry := NewRegistry(entries...)
	entries[0].Pattern = "OTHER"

	_, ok := registry.Match(ErrorCodeLinkFailure)
	assert.True(t, ok)
}

func TestRoutineSubjects(t *testing.T) {
	module, err := LinecardRoutine{}.Subject("Interface Ethernet15/1 is down (Interface removed)")
	require.NoError(t, err)
	assert.Equal(t, "15", module)

	iface, err := LinkRoutine{}.Subject("Interface Ethernet1/4 is down (Link failure)")
	require.NoError(t, err)
	assert.Equal(t, "1/4", iface)

	_, err = LinecardRoutine{}.Subject("Interface mgmt0 is down")
	assert.ErrorContains(t, err, "no module number found")
}
