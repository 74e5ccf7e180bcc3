package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

// ListConversations returns the conversations of one project.
func (c *Client) ListConversations(ctx context.Context, projectID string) ([]models.Conversation, error) {
	var out struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	path := "/v1/projects/" + url.PathEscape(projectID) + "/conversations"
	if err := c.do(ctx, http.MethodGet, "conversations", path, nil, &out); err != nil {
		return nil, err
	}
	return out.Conversations, nil
}

// CreateConversation opens a conversation under conv.ProjectID.
func (c *Client) CreateConversation(ctx context.Context, conv models.Conversation) (models.Conversation, error) {
	var out models.Conversation
	path := "/v1/projects/" + url.PathEscape(conv.ProjectID) + "/conversations"
	err := c.do(ctx, http.MethodPost, "conversations", path, conv, &out)
	return out, err
}

// GetConversation fetches one conversation by id.
func (c *Client) GetConversation(ctx context.Context, id string) (models.Conversation, error) {
	var out models.Conversation
	err := c.do(ctx, http.MethodGet, "conversations", "/v1/conversations/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateConversation applies a partial update (rename, undelete).
func (c *Client) UpdateConversation(ctx context.Context, id string, patch models.ConversationPatch) (models.Conversation, error) {
	var out models.Conversation
	err := c.do(ctx, http.MethodPut, "conversations", "/v1/conversations/"+url.PathEscape(id), patch, &out)
	return out, err
}

// DeleteConversation soft-deletes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "conversations", "/v1/conversations/"+url.PathEscape(id), nil, nil)
}
