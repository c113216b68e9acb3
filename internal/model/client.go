package model

// Client represents a workshop customer as stored in the `clients`
// table. The phone number acts as the natural key: intake resolves
// clients by exact phone match and never updates or deletes a row
// once written.
type Client struct {
	CustomerID uint64 `json:"customer_id"` // clients.customer_id
	FullName   string `json:"full_name"`   // clients.full_name
	PhoneNo    string `json:"phone_no"`    // clients.phone_no
	OilCardNo  string `json:"oil_card_no"` // clients.oil_card_no (loyalty card)
}

// ClientVehicleRow is a client left-joined with one of its vehicles.
// The vehicle columns are pointers because a client without a vehicle
// still matches the join and must render as nulls.
type ClientVehicleRow struct {
	CustomerID uint64  `json:"customer_id"`
	FullName   string  `json:"full_name"`
	PhoneNo    string  `json:"phone_no"`
	OilCardNo  string  `json:"oil_card_no"`
	VinNo      *string `json:"vin_no"`
	Make       *string `json:"make"`
	Model      *string `json:"model"`
	Year       *uint16 `json:"year"`
	Color      *string `json:"color"`
	RegNo      *string `json:"reg_no"`
}

// ClientSummary is the dashboard listing shape: client columns plus a
// short vehicle summary, ordered by full name.
type ClientSummary struct {
	CustomerID uint64  `json:"customer_id"`
	FullName   string  `json:"full_name"`
	PhoneNo    string  `json:"phone_no"`
	Make       *string `json:"make"`
	Model      *string `json:"model"`
	RegNo      *string `json:"reg_no"`
}
