package model

import "time"

const (
	MessageTypeText  = "text"
	MessageTypeAudio = "audio"
)

// Message is a typed content record. Audio content is stored as a base64 data URI.
// Content carries no explicit column type so gorm picks text/longtext per dialect.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	Type      string    `gorm:"size:32;not null;default:text;index" json:"type"`
	Title     *string   `gorm:"size:255" json:"title"`
	Artist    *string   `gorm:"size:255" json:"artist"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) IsAudio() bool {
	return m.Type == MessageTypeAudio
}
