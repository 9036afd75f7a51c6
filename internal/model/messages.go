package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatTimestampLayout matches the clock-style timestamps of the seed chat.
const ChatTimestampLayout = "3:04 PM"

// NewChatMessage builds a message authored by authorID at now.
func NewChatMessage(authorID, content string, now time.Time) ChatMessage {
	return ChatMessage{
		ID:        "c-" + uuid.NewString(),
		AuthorID:  authorID,
		Timestamp: now.Format(ChatTimestampLayout),
		Content:   content,
	}
}
