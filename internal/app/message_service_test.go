package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AhmedGamal2004/My-Personal-final/internal/model"
	"github.com/AhmedGamal2004/My-Personal-final/internal/pkg/optional"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
)

func newMessageService(t *testing.T, contentCache ContentCache, events EventPublisher) (*MessageService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewMessageService(repository.NewMessageRepository(db), contentCache, events), db
}

func loadMessage(t *testing.T, db *gorm.DB, id uint) model.Message {
	t.Helper()
	var msg model.Message
	require.NoError(t, db.First(&msg, id).Error)
	return msg
}

func TestCreateMessageRequiresContent(t *testing.T) {
	svc, db := newMessageService(t, nil, nil)

	_, err := svc.CreateMessage(context.Background(), CreateMessageInput{Content: ""})
	assert.ErrorIs(t, err, ErrContentRequired)

	var count int64
	require.NoError(t, db.Model(&model.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateMessageDefaultsToText(t *testing.T) {
	svc, db := newMessageService(t, nil, nil)

	msg, err := svc.CreateMessage(context.Background(), CreateMessageInput{Content: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	stored := loadMessage(t, db, msg.ID)
	assert.Equal(t, model.MessageTypeText, stored.Type)
	assert.Nil(t, stored.Title)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestListMessagesOrderAndElision(t *testing.T) {
	svc, _ := newMessageService(t, nil, nil)
	ctx := context.Background()

	first, err := svc.CreateMessage(ctx, CreateMessageInput{Content: "first"})
	require.NoError(t, err)
	payload := "data:audio/mpeg;base64," + strings.Repeat("QUJD", 100)
	second, err := svc.CreateMessage(ctx, CreateMessageInput{Content: payload, Type: model.MessageTypeAudio})
	require.NoError(t, err)
	third, err := svc.CreateMessage(ctx, CreateMessageInput{Content: "third", Type: "link"})
	require.NoError(t, err)

	overview, err := svc.ListMessages(ctx, false)
	require.NoError(t, err)
	require.Len(t, overview, 3)
	assert.Equal(t, []uint{first.ID, second.ID, third.ID}, []uint{overview[0].ID, overview[1].ID, overview[2].ID})
	assert.Equal(t, AudioPlaceholder, overview[1].Content)
	assert.Equal(t, "third", overview[2].Content)
	for _, m := range overview {
		assert.NotContains(t, m.Content, "QUJD")
	}

	full, err := svc.ListMessages(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, payload, full[1].Content)
}

func TestListMessagesEmptyIsNotNil(t *testing.T) {
	svc, _ := newMessageService(t, nil, nil)

	messages, err := svc.ListMessages(context.Background(), false)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestUpdateMessageRequiresID(t *testing.T) {
	svc, _ := newMessageService(t, nil, nil)

	err := svc.UpdateMessage(context.Background(), UpdateMessageInput{Content: optional.Of("x")})
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestUpdateMessageBranches(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      UpdateMessageInput
		wantText   string
		wantTitle  *string
		wantArtist *string
	}{
		{
			name:       "content title and artist",
			input:      UpdateMessageInput{Content: optional.Of("new"), Title: optional.Of("T2"), Artist: optional.Of("A2")},
			wantText:   "new",
			wantTitle:  strPtr("T2"),
			wantArtist: strPtr("A2"),
		},
		{
			name:       "title only leaves content and artist",
			input:      UpdateMessageInput{Title: optional.Of("X")},
			wantText:   "old",
			wantTitle:  strPtr("X"),
			wantArtist: strPtr("A"),
		},
		{
			name:       "content with one of title or artist ignores content",
			input:      UpdateMessageInput{Content: optional.Of("new"), Artist: optional.Of("A2")},
			wantText:   "old",
			wantTitle:  strPtr("T"),
			wantArtist: strPtr("A2"),
		},
		{
			name:       "explicit null artist clears it",
			input:      UpdateMessageInput{Artist: optional.Null()},
			wantText:   "old",
			wantTitle:  strPtr("T"),
			wantArtist: nil,
		},
		{
			name:       "content only",
			input:      UpdateMessageInput{Content: optional.Of("new")},
			wantText:   "new",
			wantTitle:  strPtr("T"),
			wantArtist: strPtr("A"),
		},
		{
			name:       "empty content is ignored",
			input:      UpdateMessageInput{Content: optional.Of("")},
			wantText:   "old",
			wantTitle:  strPtr("T"),
			wantArtist: strPtr("A"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newMessageService(t, nil, nil)
			msg, err := svc.CreateMessage(ctx, CreateMessageInput{Content: "old", Title: strPtr("T"), Artist: strPtr("A")})
			require.NoError(t, err)

			tt.input.ID = msg.ID
			require.NoError(t, svc.UpdateMessage(ctx, tt.input))

			stored := loadMessage(t, db, msg.ID)
			assert.Equal(t, tt.wantText, stored.Content)
			assert.Equal(t, tt.wantTitle, stored.Title)
			assert.Equal(t, tt.wantArtist, stored.Artist)
			assert.False(t, stored.CreatedAt.IsZero())
		})
	}
}

func TestDeleteMessage(t *testing.T) {
	svc, db := newMessageService(t, nil, nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteMessage(ctx, 0), ErrIDRequired)
	assert.NoError(t, svc.DeleteMessage(ctx, 12345))

	msg, err := svc.CreateMessage(ctx, CreateMessageInput{Content: "bye"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteMessage(ctx, msg.ID))

	var count int64
	require.NoError(t, db.Model(&model.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMessageCacheAndEvents(t *testing.T) {
	contentCache, srv := newTestCache(t)
	publisher := &recordingPublisher{}
	svc, _ := newMessageService(t, contentCache, publisher)
	ctx := context.Background()

	_, err := svc.ListMessages(ctx, false)
	require.NoError(t, err)
	require.True(t, srv.Exists("test:messages"))

	msg, err := svc.CreateMessage(ctx, CreateMessageInput{Content: "hi"})
	require.NoError(t, err)
	assert.False(t, srv.Exists("test:messages"))

	messages, err := svc.ListMessages(ctx, false)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	require.NoError(t, svc.UpdateMessage(ctx, UpdateMessageInput{ID: msg.ID, Title: optional.Of("t")}))
	require.NoError(t, svc.UpdateMessage(ctx, UpdateMessageInput{ID: msg.ID}))
	require.NoError(t, svc.DeleteMessage(ctx, msg.ID))

	events := publisher.recorded()
	require.Len(t, events, 3)
	assert.Equal(t, model.EventActionCreated, events[0].Action)
	assert.Equal(t, msg.ID, events[0].ResourceID)
	assert.Equal(t, model.EventActionUpdated, events[1].Action)
	assert.Equal(t, model.EventActionDeleted, events[2].Action)
	for _, e := range events {
		assert.Equal(t, model.EventResourceMessage, e.Resource)
		assert.False(t, e.OccurredAt.IsZero())
	}
}

func TestMessageSideEffectFailuresDoNotFailRequests(t *testing.T) {
	contentCache, srv := newTestCache(t)
	srv.Close()
	svc, _ := newMessageService(t, contentCache, &recordingPublisher{err: errBroker})
	ctx := context.Background()

	msg, err := svc.CreateMessage(ctx, CreateMessageInput{Content: "still works"})
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx, false)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
}
