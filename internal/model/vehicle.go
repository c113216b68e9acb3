package model

// Vehicle represents a row in the `vehicles` table. The VIN is the
// natural key; a vehicle is written on first sighting and never
// updated afterwards, even when later intakes supply different
// make/model/color values.
type Vehicle struct {
	VinNo      string `json:"vin_no"`      // vehicles.vin_no, natural key
	Make       string `json:"make"`        // vehicles.make
	Model      string `json:"model"`       // vehicles.model
	Year       uint16 `json:"year"`        // vehicles.year
	Color      string `json:"color"`       // vehicles.color
	RegNo      string `json:"reg_no"`      // vehicles.reg_no (registration plate)
	CustomerID uint64 `json:"customer_id"` // owning clients.customer_id
}
