package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

// ListAttachments returns the attachments of one project.
func (c *Client) ListAttachments(ctx context.Context, projectID string) ([]models.Attachment, error) {
	var out struct {
		Attachments []models.Attachment `json:"attachments"`
	}
	path := "/v1/projects/" + url.PathEscape(projectID) + "/attachments"
	if err := c.do(ctx, http.MethodGet, "attachments", path, nil, &out); err != nil {
		return nil, err
	}
	return out.Attachments, nil
}

// CreateAttachment registers attachment metadata under a.ProjectID. The
// content itself is uploaded out of band to the returned URL.
func (c *Client) CreateAttachment(ctx context.Context, a models.Attachment) (models.Attachment, error) {
	var out models.Attachment
	path := "/v1/projects/" + url.PathEscape(a.ProjectID) + "/attachments"
	err := c.do(ctx, http.MethodPost, "attachments", path, a, &out)
	return out, err
}

// DeleteAttachment removes one attachment.
func (c *Client) DeleteAttachment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "attachments", "/v1/attachments/"+url.PathEscape(id), nil, nil)
}
