package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hrcauto/workshop-backoffice/internal/model"
)

// ClientRepo provides access to the 'clients' table and its joined
// vehicle views. Clients are written once, on first intake with an
// unseen phone number, and never updated or deleted.
type ClientRepo struct{ DB *sql.DB }

func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{DB: db} }

// EnsureTx resolves a client by phone number inside an open intake
// transaction, inserting one when absent, and returns its customer_id.
// A duplicate-key failure means a concurrent intake won the insert
// race; the row is re-selected so both requests converge on one id.
func (r *ClientRepo) EnsureTx(ctx context.Context, tx *sql.Tx, fullName, phoneNo, oilCardNo string) (uint64, error) {
	phoneNo = strings.TrimSpace(phoneNo)

	var id uint64
	err := tx.QueryRowContext(ctx,
		"SELECT customer_id FROM clients WHERE phone_no=? LIMIT 1", phoneNo).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO clients (full_name, phone_no, oil_card_no) VALUES (?,?,?)",
		fullName, phoneNo, oilCardNo)
	if err != nil {
		if isDuplicate(err) {
			err = tx.QueryRowContext(ctx,
				"SELECT customer_id FROM clients WHERE phone_no=? LIMIT 1", phoneNo).Scan(&id)
			return id, err
		}
		return 0, err
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(newID), nil
}

// SearchByPhone returns the first client matching the phone number,
// left-joined with one of its vehicles. A client without a vehicle
// still matches; the vehicle columns come back as nulls.
func (r *ClientRepo) SearchByPhone(ctx context.Context, phoneNo string) (model.ClientVehicleRow, error) {
	const q = `SELECT c.customer_id, c.full_name, c.phone_no, c.oil_card_no,
		v.vin_no, v.make, v.model, v.year, v.color, v.reg_no
		FROM clients c
		LEFT JOIN vehicles v ON c.customer_id = v.customer_id
		WHERE c.phone_no = ?
		LIMIT 1`

	var row model.ClientVehicleRow
	err := r.DB.QueryRowContext(ctx, q, strings.TrimSpace(phoneNo)).Scan(
		&row.CustomerID, &row.FullName, &row.PhoneNo, &row.OilCardNo,
		&row.VinNo, &row.Make, &row.Model, &row.Year, &row.Color, &row.RegNo,
	)
	if err == sql.ErrNoRows {
		return model.ClientVehicleRow{}, ErrNotFound
	}
	return row, err
}

// ListAll returns every client left-joined with vehicle summary
// columns, ordered by full name. No pagination; the dashboard renders
// the whole book.
func (r *ClientRepo) ListAll(ctx context.Context) ([]model.ClientSummary, error) {
	const q = `SELECT c.customer_id, c.full_name, c.phone_no, v.make, v.model, v.reg_no
		FROM clients c
		LEFT JOIN vehicles v ON c.customer_id = v.customer_id
		ORDER BY c.full_name ASC`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ClientSummary, 0)
	for rows.Next() {
		var s model.ClientSummary
		if err := rows.Scan(&s.CustomerID, &s.FullName, &s.PhoneNo, &s.Make, &s.Model, &s.RegNo); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
