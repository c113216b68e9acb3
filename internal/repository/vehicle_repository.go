package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hrcauto/workshop-backoffice/internal/model"
)

// VehicleRepo provides access to the 'vehicles' table. A vehicle is
// written on first sighting of its VIN and never touched again.
type VehicleRepo struct{ DB *sql.DB }

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{DB: db} }

// EnsureTx makes sure a vehicle row exists for the VIN inside an open
// intake transaction. When the VIN is already known the stored fields
// win: incoming make/model/color values are discarded, not merged.
func (r *VehicleRepo) EnsureTx(ctx context.Context, tx *sql.Tx, v model.Vehicle) error {
	v.VinNo = strings.TrimSpace(v.VinNo)

	var existing string
	err := tx.QueryRowContext(ctx,
		"SELECT vin_no FROM vehicles WHERE vin_no=? LIMIT 1", v.VinNo).Scan(&existing)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO vehicles (vin_no, make, model, year, color, reg_no, customer_id) VALUES (?,?,?,?,?,?,?)",
		v.VinNo, v.Make, v.Model, v.Year, v.Color, v.RegNo, v.CustomerID)
	if isDuplicate(err) {
		// lost the insert race; the winner's row stands
		return nil
	}
	return err
}
