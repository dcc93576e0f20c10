package response

import (
	"time"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
)

// Health is the response of the health endpoint
type Health struct {
	Status string `json:"status"`
}

// State is the normalized view of a page session
type State struct {
	Tab       model.Tab      `json:"tab"`
	UpdatedAt time.Time      `json:"updated_at"`
	Page      viewmodel.Page `json:"page"`
}

// StateFromModel normalizes a stored view state for the API
func StateFromModel(state model.ViewState, stats viewmodel.ServerStats) State {
	return State{
		Tab:       state.Tab,
		UpdatedAt: state.UpdatedAt,
		Page:      viewmodel.NewPage(state, stats),
	}
}
