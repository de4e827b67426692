package model

import "time"

const (
	EventActionCreated = "created"
	EventActionUpdated = "updated"
	EventActionDeleted = "deleted"

	EventResourceMessage = "message"
	EventResourceProfile = "profile"
)

// ContentEvent records a successful mutation. Events travel over the broker as JSON
// and are persisted by the event worker.
type ContentEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id,omitempty"`
	Action     string    `gorm:"size:16;not null;index" json:"action"`
	Resource   string    `gorm:"size:16;not null;index" json:"resource"`
	ResourceID uint      `gorm:"index" json:"resource_id"`
	RequestID  string    `gorm:"size:64" json:"request_id,omitempty"`
	OccurredAt time.Time `gorm:"not null" json:"occurred_at"`
	CreatedAt  time.Time `json:"-"`
}

func (ContentEvent) TableName() string {
	return "content_events"
}
