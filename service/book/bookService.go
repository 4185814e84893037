package booksvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ulrichb237/library2/model"
)

var (
	ErrIsbnTaken = errors.New("isbn already registered")
	ErrNotFound  = errors.New("book not found")
	ErrBadInput  = errors.New("bad input")
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

type Service interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ByIsbn(ctx context.Context, isbn string) (*model.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Book, error)
	ByCategory(ctx context.Context, code string) ([]model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Create inserts the book unless its ISBN is already registered
// (case-insensitive).
func (s *service) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	if b.Title == "" || b.Isbn == "" {
		return nil, ErrBadInput
	}

	existing, err := s.r.ByIsbn(ctx, b.Isbn)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrIsbnTaken
	}

	if err := s.r.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIsbnTaken
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	ok, err := s.r.Update(ctx, b)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrIsbnTaken
		}
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

// Delete is a no-op when the book does not exist. Loan rows cascade.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, id)
}

func (s *service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.r.Exists(ctx, id)
}

func (s *service) ByIsbn(ctx context.Context, isbn string) (*model.Book, error) {
	b, err := s.r.ByIsbn(ctx, isbn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *service) SearchByTitle(ctx context.Context, title string) ([]model.Book, error) {
	return s.r.SearchByTitle(ctx, title)
}

func (s *service) ByCategory(ctx context.Context, code string) ([]model.Book, error) {
	return s.r.ByCategory(ctx, code)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
