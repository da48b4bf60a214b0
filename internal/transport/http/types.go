// FILE: internal/transport/http/types.go
package http

// Request types

type CreateGameRequest struct {
	State string `json:"state,omitempty" validate:"omitempty,min=9,max=512"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=4,max=16"` // coordinate format: "e2e4", "e7e8q"
}

type UndoRequest struct {
	Count int `json:"count,omitempty" validate:"omitempty,min=1,max=1000"` // default: 1
}

// Response types

type MovesResponse struct {
	GameID string   `json:"game_id"`
	Moves  []string `json:"moves"`
}

type BoardResponse struct {
	State string `json:"state"`
	Board string `json:"board"` // ASCII representation
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Games   int    `json:"games"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Error codes
const (
	ErrCodeGameNotFound      = "GAME_NOT_FOUND"
	ErrCodeNoPiece           = "NO_PIECE"
	ErrCodeInvalidMove       = "INVALID_MOVE"
	ErrCodeCausesCheck       = "CAUSES_CHECK"
	ErrCodeInvalidPromotion  = "INVALID_PROMOTION"
	ErrCodeWrongTurn         = "WRONG_TURN"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)
