package models

// Message roles accepted by the backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=user assistant system"`
	Author         string `json:"author,omitempty"`
	Body           string `json:"body" validate:"required"`
	// Attachments lists attachment ids referenced by the message
	Attachments []string `json:"attachments,omitempty"`
	// Optional reply-to message ID
	ReplyTo string `json:"reply_to,omitempty"`
	TS      int64  `json:"ts,omitempty"`
	// Pending is client-only: true while the message is an optimistic entry
	Pending bool `json:"pending,omitempty"`
	// Deleted flag; soft-delete implemented as an appended tombstone version
	Deleted bool `json:"deleted,omitempty"`
}

func (m Message) EntityID() string { return m.ID }

// MessagePatch enumerates the message fields that may be patched
// optimistically.
type MessagePatch struct {
	Body    *string `json:"body,omitempty"`
	Deleted *bool   `json:"deleted,omitempty"`
}

func (mp MessagePatch) Apply(m Message) Message {
	if mp.Body != nil {
		m.Body = *mp.Body
	}
	if mp.Deleted != nil {
		m.Deleted = *mp.Deleted
	}
	return m
}
