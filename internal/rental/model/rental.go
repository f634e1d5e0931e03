package model

import (
	"time"

	clientModel "tracker-rental/internal/client/model"
	deviceModel "tracker-rental/internal/device/model"
)

// Rental is a time-boxed rental session. A nil DataFim marks the session as
// active; at most one active session may exist per device, enforced by a
// partial unique index on (dispositivo_id) where data_fim is null. Finalizing
// sets DataFim and CustoTotal exactly once; the record is never mutated again
// and never deleted.
type Rental struct {
	ID            string     `json:"id_locacao" gorm:"column:id_locacao;primaryKey;size:32"`
	DataInicio    time.Time  `json:"dataInicio" gorm:"column:data_inicio;not null"`
	DataFim       *time.Time `json:"dataFim" gorm:"column:data_fim"`
	CustoTotal    *float64   `json:"custoTotal" gorm:"column:custo_total;type:numeric(10,2)"`
	ClienteID     string     `json:"clienteId" gorm:"column:cliente_id;size:32;not null;index"`
	DispositivoID string     `json:"dispositivoId" gorm:"column:dispositivo_id;size:32;not null;index"`

	Cliente     *clientModel.Client `json:"cliente,omitempty" gorm:"foreignKey:ClienteID;references:ID"`
	Dispositivo *deviceModel.Device `json:"dispositivo,omitempty" gorm:"foreignKey:DispositivoID;references:ID"`
}

func (Rental) TableName() string {
	return "locacoes"
}

// Ativa reports whether the rental is still open.
func (r *Rental) Ativa() bool {
	return r.DataFim == nil
}
