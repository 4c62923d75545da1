package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLookupUsesFirstLineOfPassShow(t *testing.T) {
	t.Parallel()

	source := &Source{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "network/switch1"}, args)
			return "lab-password\r\nuser: admin\n", "", nil
		},
	}

	value, err := source.Lookup(context.Background(), "network/switch1")
	require.NoError(t, err)
	assert.Equal(t, "lab-password", value)
}

func TestSourceLookupIncludesStderr(t *testing.T) {
	t.Parallel()

	runErr := errors.New("exit status 1")
	source := &Source{
		run: func(context.Context, ...string) (string, string, error) {
			return "", "Error: network/switch9 is not in the password store.", runErr
		},
	}

	_, err := source.Lookup(context.Background(), "network/switch9")
	require.ErrorIs(t, err, runErr)
	assert.ErrorContains(t, err, "not in the password store")
}

func TestSourceLookupCanceledContext(t *testing.T) {
	t.Parallel()

	source := &Source{
		run: func(context.Context, ...string) (string, string, error) {
			t.Fatal("pass must not run after cancellation")
			return "", "", nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Lookup(ctx, "network/switch1")
	require.ErrorIs(t, err, context.Canceled)
}
