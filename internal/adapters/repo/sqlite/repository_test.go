package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var observedAt = time.Date(2015, 4, 2, 14, 30, 0, 0, time.UTC)

func openTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(observedAt).Maybe()

	repo, err := Open(path, clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func removedKey(timestamp string) domain.IdentityKey {
	return domain.IdentityKey{
		Timestamp:    timestamp,
		Device:       "switch1",
		ErrorCode:    "ETHPORT-5-IF_DOWN_INTERFACE_REMOVED",
		ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)",
	}
}

func TestRepositoryInsertIsIdempotentPerKey(t *testing.T) {
	repo := openTestRepository(t, filepath.Join(t.TempDir(), "events.db"))
	ctx := context.Background()

	first, err := repo.Insert(ctx, removedKey("2015 Apr 2 14:25:06"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, removedKey("2015 Apr 2 14:25:07"))
	require.NoError(t, err)
	again, err := repo.Insert(ctx, removedKey("2015 Apr 2 14:25:06"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, again)

	event, err := repo.GetByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, domain.Event{
		ID:           first,
		Timestamp:    "2015 Apr 2 14:25:06",
		Device:       "switch1",
		ErrorCode:    "ETHPORT-5-IF_DOWN_INTERFACE_REMOVED",
		ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)",
		ObservedAt:   observedAt,
	}, event)
}

func TestRepositoryUpdateResult(t *testing.T) {
	repo := openTestRepository(t, filepath.Join(t.TempDir(), "events.db"))
	ctx := context.Background()

	id, err := repo.Insert(ctx, removedKey("2015 Apr 2 14:25:06"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateResult(ctx, id, domain.ResultRemediationFailed))
	event, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ResultRemediationFailed, event.Result)

	require.ErrorIs(t, repo.UpdateResult(ctx, id+100, domain.ResultRemediationCompleted), domain.ErrEventNotFound)
	assert.ErrorContains(t, repo.UpdateResult(ctx, id, domain.Result(-1)), "invalid event result")
}

func TestRepositoryGetMissingEvent(t *testing.T) {
	repo := openTestRepository(t, filepath.Join(t.TempDir(), "events.db"))

	_, err := repo.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRepositoryListInInsertionOrder(t *testing.T) {
	repo := openTestRepository(t, filepath.Join(t.TempDir(), "events.db"))
	ctx := context.Background()

	var ids []domain.EventID
	for i := 0; i < 4; i++ {
		id, err := repo.Insert(ctx, removedKey(fmt.Sprintf("2015 Apr 2 14:25:0%d", i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	events, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ids[0], events[0].ID)
	assert.Equal(t, ids[1], events[1].ID)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepositoryPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "events.db")

	repo, err := Open(path, nil)
	require.NoError(t, err)
	id, err := repo.Insert(context.Background(), removedKey("2015 Apr 2 14:25:06"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened := openTestRepository(t, path)
	again, err := reopened.Insert(context.Background(), removedKey("2015 Apr 2 14:25:06"))
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestRepositoryConcurrentInsertsOfOneKeyYieldOneRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	repos := []*Repository{openTestRepository(t, path), openTestRepository(t, path)}

	const writers = 16
	start := make(chan struct{})
	ids := make([]domain.EventID, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ids[i], errs[i] = repos[i%2].Insert(context.Background(), removedKey("2015 Apr 2 14:25:06"))
		}()
	}

	close(start)
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	events, err := repos[0].List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
