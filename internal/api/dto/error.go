package dto

// Error is the uniform error body every handler returns. Messages are
// operator-facing; they never echo another tenant's identifiers.
type Error struct {
	Error string `json:"error" example:"tenant not found"`
}
