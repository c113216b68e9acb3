// Package queue defines message payloads exchanged over the message broker.
package queue

// JobCardCreatedEvent is published after a job card has been committed.
// It carries enough of the intake for downstream consumers (workshop
// display board, analytics) to act without querying the database.
type JobCardCreatedEvent struct {
	JobNo     uint64 `json:"job_no"`
	FullName  string `json:"full_name"`
	PhoneNo   string `json:"phone_no"`
	VinNo     string `json:"vin_no"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	RegNo     string `json:"reg_no"`
	Mileage   uint32 `json:"mileage"`
	CreatedAt string `json:"created_at"`
}

// IntakeQueueName is the durable queue job-card events travel on.
const IntakeQueueName = "jobcard.created"
