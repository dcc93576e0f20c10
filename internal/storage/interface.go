package storage

import (
	"context"

	"github.com/mcoot/mtarp-portal/internal/model"
)

// Storage defines the interface for view-state persistence.
// Records are keyed by browser-session id and stored in their JSON form,
// so password buffers never survive a round trip.
type Storage interface {
	SaveViewState(ctx context.Context, id string, state *model.ViewState) error
	GetViewState(ctx context.Context, id string) (*model.ViewState, error)
	DeleteViewState(ctx context.Context, id string) error
}
