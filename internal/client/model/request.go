package model

// ClientRequest carries the payload for both create and update.
type ClientRequest struct {
	Nome  string `json:"nome" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
}
