package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AhmedGamal2004/My-Personal-final/internal/cache"
	"github.com/AhmedGamal2004/My-Personal-final/internal/config"
	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/platform/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(context.Background(), config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		URL:      filepath.Join(t.TempDir(), "app.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func newTestCache(t *testing.T) (*cache.ContentCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewContentCache(client, "test", time.Minute, 5*time.Second), srv
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.ContentEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event model.ContentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) recorded() []model.ContentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.ContentEvent(nil), p.events...)
}

var errBroker = errors.New("broker down")

func strPtr(s string) *string { return &s }
