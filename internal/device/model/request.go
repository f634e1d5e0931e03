package model

// DeviceRequest carries the payload for both create and update.
type DeviceRequest struct {
	Nome       string `json:"nome" validate:"required,min=2,max=255"`
	MacAddress string `json:"macAddress" validate:"required,mac_address"`
}
