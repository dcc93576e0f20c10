package request

// SelectTabRequest is the request body for switching the active tab
type SelectTabRequest struct {
	Tab string `json:"tab"`
}
