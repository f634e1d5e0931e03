package model

// StartRentalRequest carries the payload to start a rental session.
type StartRentalRequest struct {
	ClienteID     string `json:"clienteId" validate:"required"`
	DispositivoID string `json:"dispositivoId" validate:"required"`
}
