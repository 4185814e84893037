package customerrepo

import (
	"context"
	"database/sql"

	"github.com/ulrichb237/library2/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (bool, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
	ByLastName(ctx context.Context, lastName string) ([]model.Customer, error)
	List(ctx context.Context, offset, limit int) ([]model.Customer, int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const customerCols = `id, first_name, last_name, job, address, email, creation_date`

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
	INSERT INTO customers (first_name, last_name, job, address, email)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, creation_date`
	return r.db.QueryRowContext(ctx, q,
		c.FirstName, c.LastName, c.Job, c.Address, c.Email,
	).Scan(&c.ID, &c.CreationDate)
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	const q = `
	UPDATE customers
	SET first_name = $2, last_name = $3, job = $4, address = $5, email = $6
	WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		c.ID, c.FirstName, c.LastName, c.Job, c.Address, c.Email)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// Delete removes the customer together with all of their loan rows
// (ON DELETE CASCADE).
func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM customers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&ok)
	return ok, err
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const q = `
	SELECT ` + customerCols + `
	FROM customers
	WHERE lower(email) = lower($1)`
	return scanCustomer(r.db.QueryRowContext(ctx, q, email))
}

func (r *repo) ByLastName(ctx context.Context, lastName string) ([]model.Customer, error) {
	const q = `
	SELECT ` + customerCols + `
	FROM customers
	WHERE lower(last_name) = lower($1)
	ORDER BY id`
	return r.queryCustomers(ctx, q, lastName)
}

func (r *repo) List(ctx context.Context, offset, limit int) ([]model.Customer, int64, error) {
	const q = `
	SELECT ` + customerCols + `, count(*) OVER() AS total
	FROM customers
	ORDER BY id
	OFFSET $1 LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		out   []model.Customer
		total int64
	)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Job,
			&c.Address, &c.Email, &c.CreationDate, &total); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*model.Customer, error) {
	var c model.Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Job,
		&c.Address, &c.Email, &c.CreationDate); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) queryCustomers(ctx context.Context, q string, args ...any) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
