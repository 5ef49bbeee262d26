package dto

import "woz/internal/render"

type CreateSessionResponse struct {
	SessionID string           `json:"sessionId"`
	Providers []string         `json:"providers"`
	Controls  ControlsDTO      `json:"controls"`
	View      render.ViewState `json:"view"`
}

type SessionViewResponse struct {
	SessionID string           `json:"sessionId"`
	Controls  ControlsDTO      `json:"controls"`
	Total     int              `json:"total"`
	Cursor    int              `json:"cursor"`
	View      render.ViewState `json:"view"`
}

type ControlsDTO struct {
	Search    string   `json:"search"`
	Sort      string   `json:"sort"`
	Country   string   `json:"country"`
	Provider  string   `json:"provider"`
	MinRating *float64 `json:"minRating,omitempty"`
}

// UpdateControlsRequest carries the controls to change; absent fields keep
// their current value.
type UpdateControlsRequest struct {
	Search   *string `json:"search"`
	Sort     *string `json:"sort"`
	Country  *string `json:"country"`
	Provider *string `json:"provider"`
	Rating   *string `json:"rating"`
}

type ScrollRequest struct {
	DistanceToBottom *int `json:"distanceToBottom"`
}

type ScrollResponse struct {
	Rendered int  `json:"rendered"`
	Cursor   int  `json:"cursor"`
	HasMore  bool `json:"hasMore"`
}
