package session

import (
	"context"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/client"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/config"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/swr"
)

// Workspace bundles what the surfaces of one client session share: the
// API client, the list caches, and the janitor sweeping them. Close stops
// the janitor.
type Workspace struct {
	api       *client.Client
	projects  *swr.Cache[[]models.Project]
	templates *swr.Cache[[]models.Template]
	cancel    context.CancelFunc
}

// NewWorkspace builds the shared session state from the cache config. The
// janitor only runs when cfg.SweepCron is set.
func NewWorkspace(api *client.Client, cfg config.CacheConfig) (*Workspace, error) {
	ttl := cfg.TTL.Duration()
	w := &Workspace{
		api:       api,
		projects:  swr.New[[]models.Project](ttl, cfg.MaxEntries, nil),
		templates: swr.New[[]models.Template](ttl, cfg.MaxEntries, nil),
	}
	if cfg.MaxBytes > 0 {
		w.projects.SetMaxBytes(cfg.MaxBytes.Int64())
		w.templates.SetMaxBytes(cfg.MaxBytes.Int64())
	}
	cancel, err := swr.StartJanitor(context.Background(), cfg.SweepCron, func() int {
		return w.projects.Sweep() + w.templates.Sweep()
	})
	if err != nil {
		return nil, err
	}
	w.cancel = cancel
	return w, nil
}

// ProjectList opens the project surface backed by the shared cache.
func (w *Workspace) ProjectList() *ProjectList {
	return NewProjectList(w.api, w.projects)
}

// TemplateList opens the template surface backed by the shared cache.
func (w *Workspace) TemplateList() *TemplateList {
	return NewTemplateList(w.api, w.templates)
}

// Conversation opens a view on one conversation. Message logs are not
// cached; each view refetches its own base.
func (w *Workspace) Conversation(conversationID string) *ConversationView {
	return NewConversationView(w.api, conversationID)
}

// Close stops the janitor. The caches stay usable.
func (w *Workspace) Close() {
	if w.cancel != nil {
		w.cancel()
	}
}
