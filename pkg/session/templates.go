package session

import (
	"context"
	"sync"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/client"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/optimistic"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/swr"
)

const templatesCacheKey = "templates"

// TemplateList is the owning surface for prompt templates, same shape as
// ProjectList.
type TemplateList struct {
	api   *client.Client
	cache *swr.Cache[[]models.Template]

	mu   sync.Mutex
	base []models.Template

	ledger  *optimistic.Ledger[models.Template]
	mutator *optimistic.Mutator[models.Template]
}

func NewTemplateList(api *client.Client, cache *swr.Cache[[]models.Template]) *TemplateList {
	ledger := optimistic.NewLedger[models.Template]()
	return &TemplateList{
		api:     api,
		cache:   cache,
		ledger:  ledger,
		mutator: optimistic.NewMutator(ledger),
	}
}

func (l *TemplateList) Refresh(ctx context.Context) error {
	var tpls []models.Template
	var err error
	if l.cache != nil {
		tpls, err = l.cache.GetOrFetch(ctx, templatesCacheKey, func(ctx context.Context) ([]models.Template, error) {
			return l.api.ListTemplates(ctx)
		})
	} else {
		tpls, err = l.api.ListTemplates(ctx)
	}
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.base = tpls
	l.mu.Unlock()
	return nil
}

// Templates returns the projection of the confirmed list plus pending ops.
func (l *TemplateList) Templates() []models.Template {
	l.mu.Lock()
	base := l.base
	l.mu.Unlock()
	return optimistic.Project(base, l.ledger)
}

func (l *TemplateList) HasPending() bool { return l.ledger.HasPending() }

func (l *TemplateList) invalidate() {
	if l.cache != nil {
		l.cache.Invalidate(templatesCacheKey)
	}
}

func (l *TemplateList) Create(ctx context.Context, t models.Template) (models.Template, error) {
	provisional := t
	provisional.ID = optimistic.NewProvisionalID()
	op := optimistic.AddOp(optimistic.NewCorrelationKey(), provisional)
	confirmed, err := l.mutator.Perform(ctx, op, func(ctx context.Context) (models.Template, error) {
		return l.api.CreateTemplate(ctx, t)
	})
	if err != nil {
		return models.Template{}, err
	}
	l.invalidate()
	l.mu.Lock()
	l.base = append(l.base, confirmed)
	l.mu.Unlock()
	return confirmed, nil
}

func (l *TemplateList) Update(ctx context.Context, id string, patch models.TemplatePatch) (models.Template, error) {
	op := optimistic.UpdateOp[models.Template](optimistic.NewCorrelationKey(), id, patch)
	confirmed, err := l.mutator.Perform(ctx, op, func(ctx context.Context) (models.Template, error) {
		return l.api.UpdateTemplate(ctx, id, patch)
	})
	if err != nil {
		return models.Template{}, err
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

func (l *TemplateList) Delete(ctx context.Context, id string) error {
	op := optimistic.DeleteOp[models.Template](optimistic.NewCorrelationKey(), id)
	_, err := l.mutator.Perform(ctx, op, func(ctx context.Context) (models.Template, error) {
		if err := l.api.DeleteTemplate(ctx, id); err != nil {
			return models.Template{}, err
		}
		return models.Template{ID: id}, nil
	})
	if err != nil {
		return err
	}
	l.invalidate()
	l.mu.Lock()
	kept := make([]models.Template, 0, len(l.base))
	for _, t := range l.base {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	l.base = kept
	l.mu.Unlock()
	return nil
}
