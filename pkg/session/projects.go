package session

import (
	"context"
	"sync"
	"time"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/client"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/optimistic"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/swr"
)

const projectsCacheKey = "projects"

// ProjectList is the owning surface for the caller's projects. An optional
// swr cache backs Refresh so repeated openings inside the TTL skip the
// network; mutations invalidate it.
type ProjectList struct {
	api   *client.Client
	cache *swr.Cache[[]models.Project]

	mu   sync.Mutex
	base []models.Project

	ledger  *optimistic.Ledger[models.Project]
	mutator *optimistic.Mutator[models.Project]
}

// NewProjectList builds a project surface. cache may be nil to always hit
// the backend.
func NewProjectList(api *client.Client, cache *swr.Cache[[]models.Project]) *ProjectList {
	ledger := optimistic.NewLedger[models.Project]()
	return &ProjectList{
		api:     api,
		cache:   cache,
		ledger:  ledger,
		mutator: optimistic.NewMutator(ledger),
	}
}

// Refresh loads the confirmed project list, serving from the cache when
// fresh.
func (l *ProjectList) Refresh(ctx context.Context) error {
	var projects []models.Project
	var err error
	if l.cache != nil {
		projects, err = l.cache.GetOrFetch(ctx, projectsCacheKey, func(ctx context.Context) ([]models.Project, error) {
			return l.api.ListProjects(ctx)
		})
	} else {
		projects, err = l.api.ListProjects(ctx)
	}
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.base = projects
	l.mu.Unlock()
	return nil
}

// Projects returns the projection of the confirmed list plus pending ops.
func (l *ProjectList) Projects() []models.Project {
	l.mu.Lock()
	base := l.base
	l.mu.Unlock()
	return optimistic.Project(base, l.ledger)
}

// HasPending reports whether any mutation of this surface is in flight.
func (l *ProjectList) HasPending() bool { return l.ledger.HasPending() }

func (l *ProjectList) invalidate() {
	if l.cache != nil {
		l.cache.Invalidate(projectsCacheKey)
	}
}

// Create adds a project optimistically and settles against the backend.
func (l *ProjectList) Create(ctx context.Context, p models.Project) (models.Project, error) {
	provisional := p
	provisional.ID = optimistic.NewProvisionalID()
	provisional.CreatedTS = time.Now().UTC().UnixNano()
	op := optimistic.AddOp(optimistic.NewCorrelationKey(), provisional)
	confirmed, err := l.mutator.Perform(ctx, op, func(ctx context.Context) (models.Project, error) {
		return l.api.CreateProject(ctx, p)
	})
	if err != nil {
		return models.Project{}, err
	}
	l.invalidate()
	l.mu.Lock()
	l.base = append(l.base, confirmed)
	l.mu.Unlock()
	return confirmed, nil
}

// Rename patches a project's name, optimistically first.
func (l *ProjectList) Rename(ctx context.Context, id, name string) (models.Project, error) {
	patch := models.ProjectPatch{Name: &name}
	op := optimistic.UpdateOp[models.Project](optimistic.NewCorrelationKey(), id, patch)
	confirmed, err := l.mutator.Perform(ctx, op, func(ctx context.Context) (models.Project, error) {
		return l.api.UpdateProject(ctx, id, patch)
	})
	if err != nil {
		return models.Project{}, err
	}
	l.invalidate()
	l.mu.Lock()
	for i := range l.base {
		if l.base[i].ID == confirmed.ID {
			l.base[i] = confirmed
		}
	}
	l.mu.Unlock()
	return confirmed, nil
}

// Archive soft-deletes a project; the surface drops it on confirmation.
func (l *ProjectList) Archive(ctx context.Context, id string) error {
	op := optimistic.DeleteOp[models.Project](optimistic.NewCorrelationKey(), id)
	_, err := l.mutator.Perform(ctx, op, func(ctx context.Context) (models.Project, error) {
		if err := l.api.DeleteProject(ctx, id); err != nil {
			return models.Project{}, err
		}
		return models.Project{ID: id, Deleted: true}, nil
	})
	if err != nil {
		return err
	}
	l.invalidate()
	l.mu.Lock()
	kept := make([]models.Project, 0, len(l.base))
	for _, p := range l.base {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	l.base = kept
	l.mu.Unlock()
	return nil
}
