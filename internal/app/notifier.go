package app

import (
	"context"
	"log"
	"time"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/pkg/requestid"
)

type EventPublisher interface {
	Publish(ctx context.Context, event model.ContentEvent) error
}

type ContentCache interface {
	GetProfile(ctx context.Context) (*model.Settings, bool, error)
	SetProfile(ctx context.Context, settings *model.Settings) error
	GetMessages(ctx context.Context) ([]model.Message, bool, error)
	SetMessages(ctx context.Context, messages []model.Message) error
	Invalidate(ctx context.Context, resource string) error
	IsDirty(ctx context.Context, resource string) (bool, error)
}

// changeNotifier runs the side effects of a committed mutation. Neither the
// cache nor the broker can fail the request that triggered them.
type changeNotifier struct {
	cache  ContentCache
	events EventPublisher
	now    func() time.Time
}

func newChangeNotifier(cache ContentCache, events EventPublisher) changeNotifier {
	return changeNotifier{cache: cache, events: events, now: time.Now}
}

func (n changeNotifier) changed(ctx context.Context, action, resource, cacheResource string, resourceID uint) {
	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if n.cache != nil {
		if err := n.cache.Invalidate(sideCtx, cacheResource); err != nil {
			log.Printf("invalidate %s cache failed: %v", cacheResource, err)
		}
	}
	if n.events != nil {
		event := model.ContentEvent{
			Action:     action,
			Resource:   resource,
			ResourceID: resourceID,
			RequestID:  requestid.FromContext(ctx),
			OccurredAt: n.now().UTC(),
		}
		if err := n.events.Publish(sideCtx, event); err != nil {
			log.Printf("publish %s %s event failed: %v", resource, action, err)
		}
	}
}

// cacheable reports whether a fresh store read may be written back.
func (n changeNotifier) cacheable(ctx context.Context, resource string) bool {
	if n.cache == nil {
		return false
	}
	dirty, err := n.cache.IsDirty(ctx, resource)
	return err == nil && !dirty
}
