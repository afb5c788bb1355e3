package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
)

type memoryActivityRepo struct {
	entries []repository.ActivityEntry
	failing bool
}

func (m *memoryActivityRepo) Record(_ context.Context, userID domain.Identity, action string) error {
	if m.failing {
		return assert.AnError
	}
	m.entries = append(m.entries, repository.ActivityEntry{
		ID:     int64(len(m.entries) + 1),
		UserID: userID,
		Action: action,
	})
	return nil
}

func (m *memoryActivityRepo) Recent(_ context.Context, limit int) ([]repository.ActivityEntry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}

func TestActivityServiceRecordsEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	repo := &memoryActivityRepo{}
	svc := NewActivityService(dispatcher, repo, nil, zap.NewNop(), config.ActivityConfig{RecentFeedKey: "activity:recent", RecentFeedSize: 10})
	svc.RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{ID: "1", Type: events.EventUserRegistered, UserID: 3}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{ID: "2", Type: events.EventUserLoggedIn, UserID: 3}))

	entries, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "signed up", entries[0].Action)
	assert.Equal(t, "logged in", entries[1].Action)
	assert.Equal(t, domain.Identity(3), entries[0].UserID)
}

func TestActivityServiceRecordFailureIsBestEffort(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	repo := &memoryActivityRepo{failing: true}
	svc := NewActivityService(dispatcher, repo, nil, zap.NewNop(), config.ActivityConfig{})
	svc.RegisterHandlers()

	// publishing must not surface the audit failure
	err := dispatcher.Publish(context.Background(), events.Event{ID: "1", Type: events.EventProfileUpdated, UserID: 1})
	assert.NoError(t, err)
}
