package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

// ListTemplates returns all prompt templates.
func (c *Client) ListTemplates(ctx context.Context) ([]models.Template, error) {
	var out struct {
		Templates []models.Template `json:"templates"`
	}
	if err := c.do(ctx, http.MethodGet, "templates", "/v1/templates", nil, &out); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

// CreateTemplate creates a prompt template.
func (c *Client) CreateTemplate(ctx context.Context, t models.Template) (models.Template, error) {
	var out models.Template
	err := c.do(ctx, http.MethodPost, "templates", "/v1/templates", t, &out)
	return out, err
}

// GetTemplate fetches one template by id.
func (c *Client) GetTemplate(ctx context.Context, id string) (models.Template, error) {
	var out models.Template
	err := c.do(ctx, http.MethodGet, "templates", "/v1/templates/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateTemplate applies a partial update to one template.
func (c *Client) UpdateTemplate(ctx context.Context, id string, patch models.TemplatePatch) (models.Template, error) {
	var out models.Template
	err := c.do(ctx, http.MethodPut, "templates", "/v1/templates/"+url.PathEscape(id), patch, &out)
	return out, err
}

// DeleteTemplate removes one template.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "templates", "/v1/templates/"+url.PathEscape(id), nil, nil)
}
