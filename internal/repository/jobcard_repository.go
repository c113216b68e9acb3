package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hrcauto/workshop-backoffice/internal/model"
)

// FirstJobNo is the advisory number reported for an empty job_cards
// table. Job numbering at the shop historically starts here.
const FirstJobNo = 1091

// JobCardRepo writes repair orders to the 'job_cards' table and
// orchestrates the whole intake sequence. The client and vehicle
// resolution steps run inside one transaction with the job-card insert
// so a failure midway leaves no partial rows behind.
type JobCardRepo struct {
	DB       *sql.DB
	Clients  *ClientRepo
	Vehicles *VehicleRepo
}

func NewJobCardRepo(db *sql.DB, c *ClientRepo, v *VehicleRepo) *JobCardRepo {
	return &JobCardRepo{DB: db, Clients: c, Vehicles: v}
}

// CreateIntake records one intake event: resolve-or-create the client
// by phone, resolve-or-create the vehicle by VIN, insert the job card.
// It returns the database-assigned job number. DateIn defaults to the
// current server-local calendar day when the form left it empty.
func (r *JobCardRepo) CreateIntake(ctx context.Context, in model.Intake) (uint64, error) {
	dateIn := in.DateIn
	if dateIn == "" {
		dateIn = time.Now().Format("2006-01-02")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	customerID, err := r.Clients.EnsureTx(ctx, tx, in.FullName, in.PhoneNo, in.OilCardNo)
	if err != nil {
		return 0, err
	}

	if err := r.Vehicles.EnsureTx(ctx, tx, model.Vehicle{
		VinNo:      in.VinNo,
		Make:       in.Make,
		Model:      in.Model,
		Year:       in.Year,
		Color:      in.Color,
		RegNo:      in.RegNo,
		CustomerID: customerID,
	}); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO job_cards (date_in, mileage, vin_no, customer_id) VALUES (?,?,?,?)",
		dateIn, in.Mileage, in.VinNo, customerID)
	if err != nil {
		return 0, err
	}
	jobNo, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(jobNo), nil
}

// NextJobNo reports one greater than the highest stored job number, or
// FirstJobNo when the table is empty. Advisory only: nothing is
// reserved, the authoritative number is assigned at insert time.
func (r *JobCardRepo) NextJobNo(ctx context.Context) (uint64, error) {
	var max sql.NullInt64
	err := r.DB.QueryRowContext(ctx, "SELECT MAX(job_no) FROM job_cards").Scan(&max)
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return FirstJobNo, nil
	}
	return uint64(max.Int64) + 1, nil
}
