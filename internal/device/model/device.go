package model

import "time"

// Device is a rentable location tracker. The MAC address is stored in its
// canonical uppercased form and is unique across all devices. UltimoContato
// is set by the heartbeat listener and is nil for devices that never
// reported.
type Device struct {
	ID            string     `json:"id_dispositivo" gorm:"column:id_dispositivo;primaryKey;size:32"`
	Nome          string     `json:"nome" gorm:"column:nome;size:255;not null"`
	MacAddress    string     `json:"macAddress" gorm:"column:mac_address;size:17;not null;uniqueIndex"`
	UltimoContato *time.Time `json:"ultimoContato,omitempty" gorm:"column:ultimo_contato"`
}

func (Device) TableName() string {
	return "dispositivos"
}
