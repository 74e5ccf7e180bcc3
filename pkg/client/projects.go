package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
)

// ListProjects returns the caller's projects.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out struct {
		Projects []models.Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "projects", "/v1/projects", nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// CreateProject creates a project and returns the server-confirmed record.
func (c *Client) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPost, "projects", "/v1/projects", p, &out)
	return out, err
}

// GetProject fetches one project by id.
func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodGet, "projects", "/v1/projects/"+url.PathEscape(id), nil, &out)
	return out, err
}

// UpdateProject applies a partial update and returns the updated record.
func (c *Client) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPut, "projects", "/v1/projects/"+url.PathEscape(id), patch, &out)
	return out, err
}

// DeleteProject archives a project (soft delete).
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "projects", "/v1/projects/"+url.PathEscape(id), nil, nil)
}
