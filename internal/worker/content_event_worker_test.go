package worker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedGamal2004/My-Personal-final/internal/config"
	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/platform/database"
	"github.com/AhmedGamal2004/My-Personal-final/internal/platform/rabbitmq"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
)

func TestHandlePersistsEvent(t *testing.T) {
	db, err := database.New(context.Background(), config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		URL:      filepath.Join(t.TempDir(), "worker.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	repo := repository.NewEventRepository(db)
	w := NewContentEventWorker(nil, repo, "content.events")

	body, err := rabbitmq.EncodeEvent(model.ContentEvent{
		Action:     model.EventActionDeleted,
		Resource:   model.EventResourceMessage,
		ResourceID: 9,
		RequestID:  "req-9",
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, w.handle(context.Background(), body))

	events, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.EventActionDeleted, events[0].Action)
	assert.Equal(t, uint(9), events[0].ResourceID)
	assert.Equal(t, "req-9", events[0].RequestID)
}

type failingStore struct{}

func (failingStore) Create(context.Context, *model.ContentEvent) error {
	return errors.New("disk full")
}

func TestHandleRejectsBadPayloadAndStoreFailure(t *testing.T) {
	w := NewContentEventWorker(nil, failingStore{}, "content.events")

	require.Error(t, w.handle(context.Background(), []byte("{")))

	body, err := rabbitmq.EncodeEvent(model.ContentEvent{Action: model.EventActionCreated, Resource: model.EventResourceProfile})
	require.NoError(t, err)
	err = w.handle(context.Background(), body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCloseWithoutStart(t *testing.T) {
	w := NewContentEventWorker(nil, failingStore{}, "content.events")
	w.Close()
}
