package model

import "time"

// JobCard represents a repair-order record in the `job_cards` table.
// One row is written per intake event; job_no is assigned by the
// database and rows are never updated or deleted by this service.
type JobCard struct {
	JobNo      uint64    `json:"job_no"`      // job_cards.job_no, auto-increment PK
	DateIn     time.Time `json:"date_in"`     // job_cards.date_in (calendar day)
	Mileage    uint32    `json:"mileage"`     // job_cards.mileage
	VinNo      string    `json:"vin_no"`      // job_cards.vin_no
	CustomerID uint64    `json:"customer_id"` // job_cards.customer_id
}

// Intake bundles everything a single job-card submission carries:
// client identity, vehicle identity and the job metadata. DateIn is
// the raw "YYYY-MM-DD" string from the form; empty means "today".
type Intake struct {
	FullName  string
	PhoneNo   string
	OilCardNo string

	VinNo string
	Make  string
	Model string
	Year  uint16
	Color string
	RegNo string

	DateIn  string
	Mileage uint32
}
