package customersvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ulrichb237/library2/model"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("customer not found")
	ErrBadInput   = errors.New("bad input")
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

type Page struct {
	Items []model.Customer `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

type Service interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
	ByLastName(ctx context.Context, lastName string) ([]model.Customer, error)
	List(ctx context.Context, page, size int) (*Page, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Create inserts the customer unless the email is already registered
// (case-insensitive).
func (s *service) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if c.FirstName == "" || c.LastName == "" || c.Email == "" {
		return nil, ErrBadInput
	}

	existing, err := s.r.ByEmail(ctx, c.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := s.r.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	ok, err := s.r.Update(ctx, c)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Delete is a no-op when the customer does not exist. Loan rows cascade.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, id)
}

func (s *service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.r.Exists(ctx, id)
}

func (s *service) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	c, err := s.r.ByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *service) ByLastName(ctx context.Context, lastName string) ([]model.Customer, error) {
	return s.r.ByLastName(ctx, lastName)
}

func (s *service) List(ctx context.Context, page, size int) (*Page, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	items, total, err := s.r.List(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Total: total, Page: page, Size: size}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
