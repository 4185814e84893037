package bookrepo

import (
	"context"
	"database/sql"

	"github.com/ulrichb237/library2/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, b *model.Book) (bool, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ByIsbn(ctx context.Context, isbn string) (*model.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Book, error)
	ByCategory(ctx context.Context, code string) ([]model.Book, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const bookCols = `id, title, isbn, author, category_code, release_date, register_date, total_copies`

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	const q = `
	INSERT INTO books (title, isbn, author, category_code, release_date, total_copies)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, register_date`
	return r.db.QueryRowContext(ctx, q,
		b.Title, b.Isbn, b.Author, b.CategoryCode, b.ReleaseDate, b.TotalCopies,
	).Scan(&b.ID, &b.RegisterDate)
}

func (r *repo) Update(ctx context.Context, b *model.Book) (bool, error) {
	const q = `
	UPDATE books
	SET title = $2, isbn = $3, author = $4, category_code = $5,
	    release_date = $6, total_copies = $7
	WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		b.ID, b.Title, b.Isbn, b.Author, b.CategoryCode, b.ReleaseDate, b.TotalCopies)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// Delete removes the book; its loan rows go with it (ON DELETE CASCADE).
func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM books WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&ok)
	return ok, err
}

func (r *repo) ByIsbn(ctx context.Context, isbn string) (*model.Book, error) {
	const q = `
	SELECT ` + bookCols + `
	FROM books
	WHERE lower(isbn) = lower($1)`
	return scanBook(r.db.QueryRowContext(ctx, q, isbn))
}

func (r *repo) SearchByTitle(ctx context.Context, title string) ([]model.Book, error) {
	const q = `
	SELECT ` + bookCols + `
	FROM books
	WHERE title ILIKE '%' || $1 || '%'
	ORDER BY id`
	return r.queryBooks(ctx, q, title)
}

func (r *repo) ByCategory(ctx context.Context, code string) ([]model.Book, error) {
	const q = `
	SELECT ` + bookCols + `
	FROM books
	WHERE category_code = $1
	ORDER BY id`
	return r.queryBooks(ctx, q, code)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*model.Book, error) {
	var (
		b       model.Book
		release sql.NullTime
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Isbn, &b.Author, &b.CategoryCode,
		&release, &b.RegisterDate, &b.TotalCopies); err != nil {
		return nil, err
	}
	if release.Valid {
		t := release.Time
		b.ReleaseDate = &t
	}
	return &b, nil
}

func (r *repo) queryBooks(ctx context.Context, q string, args ...any) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}
