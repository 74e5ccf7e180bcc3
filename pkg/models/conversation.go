package models

type Conversation struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id" validate:"required"`
	Title     string `json:"title,omitempty" validate:"max=500"`
	// Slug is generated from title and id for human-friendly URLs
	Slug string `json:"slug,omitempty"`
	// Created timestamp (ns)
	CreatedTS int64 `json:"created_ts,omitempty"`
	// Updated timestamp (ns) - last time metadata or conversation activity changed
	UpdatedTS int64 `json:"updated_ts,omitempty"`
	// Deleted marks a conversation as soft-deleted; DeletedTS records deletion time (ns)
	Deleted   bool  `json:"deleted,omitempty"`
	DeletedTS int64 `json:"deleted_ts,omitempty"`
}

func (c Conversation) EntityID() string { return c.ID }

// ConversationPatch enumerates the conversation fields that may be patched
// optimistically.
type ConversationPatch struct {
	Title   *string `json:"title,omitempty"`
	Deleted *bool   `json:"deleted,omitempty"`
}

func (cp ConversationPatch) Apply(c Conversation) Conversation {
	if cp.Title != nil {
		c.Title = *cp.Title
	}
	if cp.Deleted != nil {
		c.Deleted = *cp.Deleted
	}
	return c
}
