package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileResolverUsesDeviceProfile(t *testing.T) {
	creds := mocks.NewMockCredentialSource(t)
	creds.EXPECT().Lookup(mockAnyContext(), "network/core").Return("s3cret", nil).Once()

	resolver := NewProfileResolver(
		DeviceProfile{Username: "netops", PasswordRef: "network/{device}"},
		map[string]DeviceProfile{"switch1": {Address: "10.0.0.1", PasswordRef: "network/core"}},
		creds,
	)

	target, err := resolver.Resolve(context.Background(), "switch1")
	require.NoError(t, err)
	assert.Equal(t, domain.Target{Device: "switch1", Address: "10.0.0.1", Username: "netops", Password: "s3cret"}, target)
}

func TestProfileResolverExpandsDefaultReference(t *testing.T) {
	creds := mocks.NewMockCredentialSource(t)
	creds.EXPECT().Lookup(mockAnyContext(), "network/switch2").Return("pw", nil).Once()

	resolver := NewProfileResolver(DeviceProfile{Username: "netops", PasswordRef: "network/{device}"}, nil, creds)

	target, err := resolver.Resolve(context.Background(), "switch2")
	require.NoError(t, err)
	assert.Equal(t, "switch2", target.Address)
	assert.Equal(t, "pw", target.Password)
}

func TestProfileResolverWithoutReferenceSkipsLookup(t *testing.T) {
	creds := mocks.NewMockCredentialSource(t)
	resolver := NewProfileResolver(DeviceProfile{Username: "netops"}, nil, creds)

	target, err := resolver.Resolve(context.Background(), "switch3")
	require.NoError(t, err)
	assert.Empty(t, target.Password)
}

func TestProfileResolverWrapsLookupFailure(t *testing.T) {
	lookupErr := errors.New("no such entry")
	creds := mocks.NewMockCredentialSource(t)
	creds.EXPECT().Lookup(mockAnyContext(), "network/switch4").Return("", lookupErr).Once()
	resolver := NewProfileResolver(DeviceProfile{PasswordRef: "network/{device}"}, nil, creds)

	_, err := resolver.Resolve(context.Background(), "switch4")
	require.ErrorIs(t, err, lookupErr)
	assert.ErrorContains(t, err, "lookup password for switch4")
}

func TestProfileResolverMatchesDevicesCaseInsensitively(t *testing.T) {
	resolver := NewProfileResolver(DeviceProfile{}, map[string]DeviceProfile{"Spine-01": {Address: "10.0.0.9"}}, nil)

	target, err := resolver.Resolve(context.Background(), "SPINE-01")
	require.NoError(t, err)
	assert.Equal(t, "SPINE-01", target.Device)
	assert.Equal(t, "10.0.0.9", target.Address)
}
