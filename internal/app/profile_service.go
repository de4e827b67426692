package app

import (
	"context"

	"github.com/AhmedGamal2004/My-Personal-final/internal/cache"
	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/pkg/optional"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
)

type ProfileDefaults struct {
	Name string
	Bio  string
}

// ProfilePatch fields that are absent or null keep the stored value.
type ProfilePatch struct {
	Name   optional.String
	Bio    optional.String
	Avatar optional.String
	Cover  optional.String
}

type ProfileService struct {
	settingsRepo *repository.SettingsRepository
	defaults     ProfileDefaults
	notifier     changeNotifier
}

func NewProfileService(
	settingsRepo *repository.SettingsRepository,
	defaults ProfileDefaults,
	contentCache ContentCache,
	events EventPublisher,
) *ProfileService {
	return &ProfileService{
		settingsRepo: settingsRepo,
		defaults:     defaults,
		notifier:     newChangeNotifier(contentCache, events),
	}
}

// GetProfile returns the singleton row, creating it with defaults on first use.
// A nil result with a nil error means the row could not be produced.
func (s *ProfileService) GetProfile(ctx context.Context) (*model.Settings, error) {
	if s.notifier.cacheable(ctx, cache.ResourceProfile) {
		if cached, hit, err := s.notifier.cache.GetProfile(ctx); err == nil && hit {
			return cached, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		if err := s.settingsRepo.EnsureDefaults(ctx, s.defaults.Name, s.defaults.Bio); err != nil {
			return nil, err
		}
		if settings, err = s.settingsRepo.Get(ctx); err != nil {
			return nil, err
		}
	}

	if settings != nil && s.notifier.cacheable(ctx, cache.ResourceProfile) {
		_ = s.notifier.cache.SetProfile(ctx, settings)
	}
	return settings, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	if err := s.settingsRepo.EnsureDefaults(ctx, s.defaults.Name, s.defaults.Bio); err != nil {
		return err
	}

	var update repository.SettingsPatch
	update.Name, _ = patch.Name.NonNull()
	update.Bio, _ = patch.Bio.NonNull()
	update.Avatar, _ = patch.Avatar.NonNull()
	update.Cover, _ = patch.Cover.NonNull()
	if err := s.settingsRepo.Coalesce(ctx, update); err != nil {
		return err
	}

	s.notifier.changed(ctx, model.EventActionUpdated, model.EventResourceProfile, cache.ResourceProfile, model.SettingsID)
	return nil
}
