package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

// ListMessages returns the messages of one conversation in timestamp order.
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	var out struct {
		Messages []models.Message `json:"messages"`
	}
	path := "/v1/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := c.do(ctx, http.MethodGet, "messages", path, nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// CreateMessage posts a message to m.ConversationID and returns the
// server-confirmed record. Provisional client fields (id, Pending) are
// replaced by the server.
func (c *Client) CreateMessage(ctx context.Context, m models.Message) (models.Message, error) {
	var out models.Message
	path := "/v1/conversations/" + url.PathEscape(m.ConversationID) + "/messages"
	err := c.do(ctx, http.MethodPost, "messages", path, m, &out)
	return out, err
}

// UpdateMessage applies a partial update to one message.
func (c *Client) UpdateMessage(ctx context.Context, conversationID, id string, patch models.MessagePatch) (models.Message, error) {
	var out models.Message
	path := "/v1/conversations/" + url.PathEscape(conversationID) + "/messages/" + url.PathEscape(id)
	err := c.do(ctx, http.MethodPut, "messages", path, patch, &out)
	return out, err
}

// DeleteMessage soft-deletes one message.
func (c *Client) DeleteMessage(ctx context.Context, conversationID, id string) error {
	path := "/v1/conversations/" + url.PathEscape(conversationID) + "/messages/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, "messages", path, nil, nil)
}
