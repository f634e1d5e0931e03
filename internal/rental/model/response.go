package model

import "time"

// ClienteResumo is the reduced client view joined into start/finalize
// responses.
type ClienteResumo struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// DispositivoResumo is the reduced device view joined into start/finalize
// responses.
type DispositivoResumo struct {
	Nome       string `json:"nome"`
	MacAddress string `json:"macAddress"`
}

type RentalResponse struct {
	ID            string             `json:"id_locacao"`
	DataInicio    time.Time          `json:"dataInicio"`
	DataFim       *time.Time         `json:"dataFim"`
	CustoTotal    *float64           `json:"custoTotal"`
	ClienteID     string             `json:"clienteId"`
	DispositivoID string             `json:"dispositivoId"`
	Cliente       *ClienteResumo     `json:"cliente,omitempty"`
	Dispositivo   *DispositivoResumo `json:"dispositivo,omitempty"`
}

// FinalizeRentalResponse extends the rental with the billing breakdown for
// display and audit.
type FinalizeRentalResponse struct {
	RentalResponse
	TempoTotalMinutos int64   `json:"tempoTotalMinutos"`
	PrecoPorMinuto    float64 `json:"precoPorMinuto"`
}

func (r *Rental) ToResponse() *RentalResponse {
	resp := &RentalResponse{
		ID:            r.ID,
		DataInicio:    r.DataInicio,
		DataFim:       r.DataFim,
		CustoTotal:    r.CustoTotal,
		ClienteID:     r.ClienteID,
		DispositivoID: r.DispositivoID,
	}

	if r.Cliente != nil {
		resp.Cliente = &ClienteResumo{
			Nome:  r.Cliente.Nome,
			Email: r.Cliente.Email,
		}
	}
	if r.Dispositivo != nil {
		resp.Dispositivo = &DispositivoResumo{
			Nome:       r.Dispositivo.Nome,
			MacAddress: r.Dispositivo.MacAddress,
		}
	}

	return resp
}
