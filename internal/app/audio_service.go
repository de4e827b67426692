package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AhmedGamal2004/My-Personal-final/internal/audio"
	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
)

const (
	DefaultAudioTitle  = "Untitled"
	DefaultAudioArtist = "Unknown Artist"
)

type AudioService struct {
	messages    *MessageService
	messageRepo *repository.MessageRepository
}

func NewAudioService(messages *MessageService, messageRepo *repository.MessageRepository) *AudioService {
	return &AudioService{
		messages:    messages,
		messageRepo: messageRepo,
	}
}

// UploadAudio stores raw as an audio message. Blank title and artist fall back
// to DefaultAudioTitle and DefaultAudioArtist.
func (s *AudioService) UploadAudio(ctx context.Context, raw []byte, title, artist string) (*model.Message, error) {
	content, err := audio.Encode(raw)
	if err != nil {
		if errors.Is(err, audio.ErrEmptyPayload) {
			return nil, ErrAudioRequired
		}
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultAudioTitle
	}
	artist = strings.TrimSpace(artist)
	if artist == "" {
		artist = DefaultAudioArtist
	}

	return s.messages.CreateMessage(ctx, CreateMessageInput{
		Content: content,
		Type:    model.MessageTypeAudio,
		Title:   &title,
		Artist:  &artist,
	})
}

func (s *AudioService) FetchAudio(ctx context.Context, id uint) ([]byte, error) {
	if id == 0 {
		return nil, ErrIDRequired
	}
	message, err := s.messageRepo.GetAudioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrAudioNotFound
	}

	raw, err := audio.Decode(message.Content)
	if err != nil {
		return nil, fmt.Errorf("audio message %d: %w", id, err)
	}
	return raw, nil
}
