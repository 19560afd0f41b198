package models

import (
	"strings"
	"time"
)

// Message is one chat message in a room. Immutable once stored.
type Message struct {
	Room      string `dynamodbav:"room" json:"room"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Text      string `dynamodbav:"text" json:"text"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// MessageTimeLayout is a fixed-width UTC timestamp layout. Unlike
// RFC3339Nano it never trims trailing zeros, so lexicographic order on
// CreatedAt equals chronological order and the column can serve as the
// table sort key.
const MessageTimeLayout = "2006-01-02T15:04:05.000000000Z"

// FormatMessageTime renders t in MessageTimeLayout.
func FormatMessageTime(t time.Time) string {
	return t.UTC().Format(MessageTimeLayout)
}

// roomSeparator must not appear in user identifiers (emails and UUIDs are
// both safe). Same convention as the composite keys in the action table.
const roomSeparator = "#"

// ResolveRoom returns the canonical room id for a user pair. The two ids
// are sorted first, so ResolveRoom(a, b) == ResolveRoom(b, a).
func ResolveRoom(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + roomSeparator + b
}

// RoomParticipants splits a room id back into its two participants.
// Returns false for ids that are not well-formed pair rooms.
func RoomParticipants(room string) (string, string, bool) {
	a, b, ok := strings.Cut(room, roomSeparator)
	if !ok || a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}
