package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/remedy/internal/adapters/syslog"
	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var syslogLines = []string{
	"2015 Apr  2 14:25:06 switch1 %ETHPORT-5-IF_DOWN_INTERFACE_REMOVED: Interface Ethernet5/1 is down (Interface removed)",
	"not an event",
	"2015 Apr  2 14:25:07 switch1 %ETHPORT-5-IF_DOWN_LINK_FAILURE: Interface Ethernet1/4 is down (Link failure)",
	"2015 Apr  2 14:25:06 switch1 %ETHPORT-5-IF_DOWN_INTERFACE_REMOVED: Interface Ethernet5/1 is down (Interface removed)",
}

func TestIngestServiceInsertsRecognisedLines(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	service := NewIngestService(repo, syslog.Parser{}, nil)

	removed := domain.IdentityKey{
		Timestamp:    "2015 Apr 2 14:25:06",
		Device:       "switch1",
		ErrorCode:    interfaceRemovedCode,
		ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)",
	}
	link := domain.IdentityKey{
		Timestamp:    "2015 Apr 2 14:25:07",
		Device:       "switch1",
		ErrorCode:    linkFailureCode,
		ErrorMessage: "Interface Ethernet1/4 is down (Link failure)",
	}
	repo.EXPECT().Insert(mockAnyContext(), removed).Return(domain.EventID(1), nil).Twice()
	repo.EXPECT().Insert(mockAnyContext(), link).Return(domain.EventID(2), nil).Once()

	ids, err := service.Ingest(context.Background(), syslogLines)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventID{1, 2, 1}, ids)
}

func TestIngestServiceStopsOnRepositoryFailure(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	service := NewIngestService(repo, syslog.Parser{}, nil)

	insertErr := errors.New("disk full")
	repo.EXPECT().Insert(mockAnyContext(), mock.Anything).Return(domain.EventID(0), insertErr).Once()

	ids, err := service.Ingest(context.Background(), syslogLines)
	require.ErrorIs(t, err, insertErr)
	assert.Empty(t, ids)
}
