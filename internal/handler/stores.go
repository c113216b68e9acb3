package handler

import (
	"context"

	"github.com/hrcauto/workshop-backoffice/internal/model"
)

// Handlers depend on these narrow store interfaces rather than the
// concrete repositories so the HTTP layer can be exercised against
// fakes. The repository package satisfies all of them.

// UserStore reads staff accounts for login.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// IntakeStore records job-card intakes and reports the advisory next
// job number.
type IntakeStore interface {
	CreateIntake(ctx context.Context, in model.Intake) (uint64, error)
	NextJobNo(ctx context.Context) (uint64, error)
}

// ClientStore serves the search and dashboard listing reads.
type ClientStore interface {
	SearchByPhone(ctx context.Context, phoneNo string) (model.ClientVehicleRow, error)
	ListAll(ctx context.Context) ([]model.ClientSummary, error)
}
