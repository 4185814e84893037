// repository/loan/repo.go
package loanrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/ulrichb237/library2/model"
)

type Repo interface {
	// Composite-key lookups. The pair (bookID, customerID) addresses the
	// lending relationship; ByPair returns its most recent row.
	ByPair(ctx context.Context, bookID, customerID int64) (*model.Loan, error)
	ByPairAndStatus(ctx context.Context, bookID, customerID int64, status model.LoanStatus) (*model.Loan, error)
	ByID(ctx context.Context, id int64) (*model.Loan, error)

	// Reporting
	ByEndDateBefore(ctx context.Context, maxEndDate time.Time) ([]model.Loan, error)
	ByCustomerEmailAndStatus(ctx context.Context, email string, status model.LoanStatus) ([]model.Loan, error)

	// Mutations
	Insert(ctx context.Context, bookID, customerID int64, begin, end time.Time) (int64, error)
	SetStatus(ctx context.Context, id int64, status model.LoanStatus) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Every read joins books and customers so the returned loan carries the
// book/customer summaries the presentation layer exposes.
const loanSelect = `
	SELECT l.id, l.book_id, l.customer_id,
	       b.isbn, b.title,
	       c.first_name, c.last_name, c.email,
	       l.begin_date, l.end_date, l.status
	FROM loans l
	JOIN books b      ON b.id = l.book_id
	JOIN customers c  ON c.id = l.customer_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoan(row rowScanner) (*model.Loan, error) {
	var l model.Loan
	if err := row.Scan(
		&l.ID, &l.BookID, &l.CustomerID,
		&l.Book.Isbn, &l.Book.Title,
		&l.Customer.FirstName, &l.Customer.LastName, &l.Customer.Email,
		&l.BeginDate, &l.EndDate, &l.Status,
	); err != nil {
		return nil, err
	}
	l.Book.ID = l.BookID
	l.Customer.ID = l.CustomerID
	return &l, nil
}

func (r *repo) ByPair(ctx context.Context, bookID, customerID int64) (*model.Loan, error) {
	const q = loanSelect + `
	WHERE l.book_id = $1 AND l.customer_id = $2
	ORDER BY l.id DESC
	LIMIT 1`
	return scanLoan(r.db.QueryRowContext(ctx, q, bookID, customerID))
}

func (r *repo) ByPairAndStatus(ctx context.Context, bookID, customerID int64, status model.LoanStatus) (*model.Loan, error) {
	const q = loanSelect + `
	WHERE l.book_id = $1 AND l.customer_id = $2 AND l.status = $3
	ORDER BY l.id DESC
	LIMIT 1`
	return scanLoan(r.db.QueryRowContext(ctx, q, bookID, customerID, status))
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Loan, error) {
	const q = loanSelect + `
	WHERE l.id = $1`
	return scanLoan(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) ByEndDateBefore(ctx context.Context, maxEndDate time.Time) ([]model.Loan, error) {
	const q = loanSelect + `
	WHERE l.end_date < $1
	ORDER BY l.id`
	return r.queryLoans(ctx, q, maxEndDate)
}

func (r *repo) ByCustomerEmailAndStatus(ctx context.Context, email string, status model.LoanStatus) ([]model.Loan, error) {
	// Most recent loan first; id breaks begin_date ties stably.
	const q = loanSelect + `
	WHERE lower(c.email) = lower($1) AND l.status = $2
	ORDER BY l.begin_date DESC, l.id DESC`
	return r.queryLoans(ctx, q, email, status)
}

func (r *repo) queryLoans(ctx context.Context, q string, args ...any) ([]model.Loan, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *repo) Insert(ctx context.Context, bookID, customerID int64, begin, end time.Time) (int64, error) {
	const q = `
	INSERT INTO loans (book_id, customer_id, begin_date, end_date, status)
	VALUES ($1, $2, $3, $4, 'OPEN')
	RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, bookID, customerID, begin, end).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) SetStatus(ctx context.Context, id int64, status model.LoanStatus) error {
	const q = `
	UPDATE loans
	SET status = $2
	WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, status)
	return err
}
