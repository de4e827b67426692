package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	return storeErr("create message", r.db.WithContext(ctx).Create(message).Error)
}

// List returns every message in chronological order.
func (r *MessageRepository) List(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	if err := r.ordered(ctx).Find(&messages).Error; err != nil {
		return nil, storeErr("list messages", err)
	}
	return messages, nil
}

// ListOverview is List with audio content replaced by placeholder inside the
// query, so audio payloads never leave the store.
func (r *MessageRepository) ListOverview(ctx context.Context, placeholder string) ([]model.Message, error) {
	var messages []model.Message
	err := r.ordered(ctx).
		Select("id, type, title, artist, created_at, CASE WHEN type = ? THEN ? ELSE content END AS content",
			model.MessageTypeAudio, placeholder).
		Find(&messages).Error
	if err != nil {
		return nil, storeErr("list messages", err)
	}
	return messages, nil
}

func (r *MessageRepository) GetAudioByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).
		Where("id = ? AND type = ?", id, model.MessageTypeAudio).
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr("get audio message", err)
	}
	return &message, nil
}

// UpdateColumns writes exactly the given columns; a nil value stores NULL.
func (r *MessageRepository) UpdateColumns(ctx context.Context, id uint, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("id = ?", id).
		Updates(columns).Error
	return storeErr("update message", err)
}

// Delete removes the message; a missing id is not an error.
func (r *MessageRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Message{}).Error
	return storeErr("delete message", err)
}

func (r *MessageRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC")
}
