package app

import (
	"context"

	"github.com/AhmedGamal2004/My-Personal-final/internal/cache"
	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/pkg/optional"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
)

// AudioPlaceholder replaces audio content in overview listings.
const AudioPlaceholder = "refer to binary endpoint"

type MessageService struct {
	messageRepo *repository.MessageRepository
	notifier    changeNotifier
}

type CreateMessageInput struct {
	Content string
	Type    string
	Title   *string
	Artist  *string
}

type UpdateMessageInput struct {
	ID      uint
	Content optional.String
	Title   optional.String
	Artist  optional.String
}

func NewMessageService(messageRepo *repository.MessageRepository, contentCache ContentCache, events EventPublisher) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		notifier:    newChangeNotifier(contentCache, events),
	}
}

// ListMessages returns all messages oldest first. Unless includeFullContent is
// set, audio content is replaced by AudioPlaceholder.
func (s *MessageService) ListMessages(ctx context.Context, includeFullContent bool) ([]model.Message, error) {
	if includeFullContent {
		return nonNil(s.messageRepo.List(ctx))
	}

	if s.notifier.cacheable(ctx, cache.ResourceMessages) {
		if cached, hit, err := s.notifier.cache.GetMessages(ctx); err == nil && hit {
			return nonNil(cached, nil)
		}
	}

	messages, err := s.messageRepo.ListOverview(ctx, AudioPlaceholder)
	if err != nil {
		return nil, err
	}
	if s.notifier.cacheable(ctx, cache.ResourceMessages) {
		_ = s.notifier.cache.SetMessages(ctx, messages)
	}
	return nonNil(messages, nil)
}

func (s *MessageService) CreateMessage(ctx context.Context, input CreateMessageInput) (*model.Message, error) {
	if input.Content == "" {
		return nil, ErrContentRequired
	}
	msgType := input.Type
	if msgType == "" {
		msgType = model.MessageTypeText
	}

	message := &model.Message{
		Content: input.Content,
		Type:    msgType,
		Title:   input.Title,
		Artist:  input.Artist,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.notifier.changed(ctx, model.EventActionCreated, model.EventResourceMessage, cache.ResourceMessages, message.ID)
	return message, nil
}

// UpdateMessage applies the first matching rule:
//  1. content with both title and artist present: all three are written
//  2. title or artist present: only the present ones are written, content is ignored
//  3. content alone: only content is written
//
// A present null title or artist stores NULL.
func (s *MessageService) UpdateMessage(ctx context.Context, input UpdateMessageInput) error {
	if input.ID == 0 {
		return ErrIDRequired
	}

	columns := map[string]any{}
	switch {
	case input.Content.Truthy() && input.Title.Present() && input.Artist.Present():
		columns["content"] = *input.Content.Value
		columns["title"] = input.Title.Value
		columns["artist"] = input.Artist.Value
	case input.Title.Present() || input.Artist.Present():
		if input.Title.Present() {
			columns["title"] = input.Title.Value
		}
		if input.Artist.Present() {
			columns["artist"] = input.Artist.Value
		}
	case input.Content.Truthy():
		columns["content"] = *input.Content.Value
	}
	if len(columns) == 0 {
		return nil
	}

	if err := s.messageRepo.UpdateColumns(ctx, input.ID, columns); err != nil {
		return err
	}
	s.notifier.changed(ctx, model.EventActionUpdated, model.EventResourceMessage, cache.ResourceMessages, input.ID)
	return nil
}

// DeleteMessage succeeds for ids that do not exist.
func (s *MessageService) DeleteMessage(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrIDRequired
	}
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.changed(ctx, model.EventActionDeleted, model.EventResourceMessage, cache.ResourceMessages, id)
	return nil
}

func nonNil(messages []model.Message, err error) ([]model.Message, error) {
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}
