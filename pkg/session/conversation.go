// Package session holds the owning surfaces of the client state: each view
// pairs a server-confirmed base collection with its own pending-op ledger
// and renders their projection. Views are constructed per surface; nothing
// here is shared package-level state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/client"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/optimistic"
)

// ConversationView is the live state of one open conversation: the
// confirmed message log plus whatever the user has done that has not
// settled yet.
type ConversationView struct {
	api    *client.Client
	convID string

	mu   sync.Mutex
	base []models.Message

	ledger  *optimistic.Ledger[models.Message]
	mutator *optimistic.Mutator[models.Message]
}

func NewConversationView(api *client.Client, conversationID string) *ConversationView {
	ledger := optimistic.NewLedger[models.Message]()
	return &ConversationView{
		api:     api,
		convID:  conversationID,
		ledger:  ledger,
		mutator: optimistic.NewMutator(ledger),
	}
}

// ConversationID returns the id of the conversation this view renders.
func (v *ConversationView) ConversationID() string { return v.convID }

// Refresh refetches the confirmed message log. Pending ops are untouched;
// the next projection replays them over the new base.
func (v *ConversationView) Refresh(ctx context.Context) error {
	msgs, err := v.api.ListMessages(ctx, v.convID)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.base = msgs
	v.mu.Unlock()
	return nil
}

// Messages returns what the surface should render right now: the confirmed
// base with pending ops projected over it.
func (v *ConversationView) Messages() []models.Message {
	v.mu.Lock()
	base := v.base
	v.mu.Unlock()
	return optimistic.Project(base, v.ledger)
}

// HasPending reports whether any mutation of this view is still in flight.
func (v *ConversationView) HasPending() bool { return v.ledger.HasPending() }

// Send posts a user message. The provisional message (tmp- id, Pending set)
// shows up in Messages() immediately; once the backend confirms, the base
// is refreshed so the confirmed record and any assistant reply replace it.
// On failure the provisional entry is retracted and the error returned.
func (v *ConversationView) Send(ctx context.Context, body string) (models.Message, error) {
	provisional := models.Message{
		ID:             optimistic.NewProvisionalID(),
		ConversationID: v.convID,
		Role:           models.RoleUser,
		Body:           body,
		TS:             time.Now().UTC().UnixNano(),
		Pending:        true,
	}
	op := optimistic.AddOp(optimistic.NewCorrelationKey(), provisional)
	confirmed, err := v.mutator.Perform(ctx, op, func(ctx context.Context) (models.Message, error) {
		return v.api.CreateMessage(ctx, models.Message{
			ConversationID: v.convID,
			Role:           models.RoleUser,
			Body:           body,
		})
	})
	if err != nil {
		return models.Message{}, err
	}
	if rerr := v.Refresh(ctx); rerr != nil {
		logger.Warn("conversation_refresh_failed", "conversation", v.convID, "error", rerr)
	}
	return confirmed, nil
}

// Edit applies a partial update to one message, optimistically first.
func (v *ConversationView) Edit(ctx context.Context, messageID string, patch models.MessagePatch) (models.Message, error) {
	op := optimistic.UpdateOp[models.Message](optimistic.NewCorrelationKey(), messageID, patch)
	confirmed, err := v.mutator.Perform(ctx, op, func(ctx context.Context) (models.Message, error) {
		return v.api.UpdateMessage(ctx, v.convID, messageID, patch)
	})
	if err != nil {
		return models.Message{}, err
	}
	v.mu.Lock()
	for i := range v.base {
		if v.base[i].ID == confirmed.ID {
			v.base[i] = confirmed
		}
	}
	v.mu.Unlock()
	return confirmed, nil
}

// Delete removes one message, optimistically first. The backend soft
// deletes; the view drops the message from its base on confirmation.
func (v *ConversationView) Delete(ctx context.Context, messageID string) error {
	op := optimistic.DeleteOp[models.Message](optimistic.NewCorrelationKey(), messageID)
	_, err := v.mutator.Perform(ctx, op, func(ctx context.Context) (models.Message, error) {
		if err := v.api.DeleteMessage(ctx, v.convID, messageID); err != nil {
			return models.Message{}, err
		}
		return models.Message{ID: messageID, Deleted: true}, nil
	})
	if err != nil {
		return err
	}
	v.mu.Lock()
	kept := make([]models.Message, 0, len(v.base))
	for _, m := range v.base {
		if m.ID != messageID {
			kept = append(kept, m)
		}
	}
	v.base = kept
	v.mu.Unlock()
	return nil
}
