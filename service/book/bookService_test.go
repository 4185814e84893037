// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/ulrichb237/library2/model"
	booksvc "github.com/ulrichb237/library2/service/book"
)

type repoMock struct {
	createFn   func(ctx context.Context, b *model.Book) error
	updateFn   func(ctx context.Context, b *model.Book) (bool, error)
	deleteFn   func(ctx context.Context, id int64) error
	existsFn   func(ctx context.Context, id int64) (bool, error)
	byIsbnFn   func(ctx context.Context, isbn string) (*model.Book, error)
	byTitleFn  func(ctx context.Context, title string) ([]model.Book, error)
	byCatFn    func(ctx context.Context, code string) ([]model.Book, error)
}

func (m *repoMock) Create(ctx context.Context, b *model.Book) error { return m.createFn(ctx, b) }
func (m *repoMock) Update(ctx context.Context, b *model.Book) (bool, error) {
	return m.updateFn(ctx, b)
}
func (m *repoMock) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }
func (m *repoMock) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}
func (m *repoMock) ByIsbn(ctx context.Context, isbn string) (*model.Book, error) {
	return m.byIsbnFn(ctx, isbn)
}
func (m *repoMock) SearchByTitle(ctx context.Context, title string) ([]model.Book, error) {
	return m.byTitleFn(ctx, title)
}
func (m *repoMock) ByCategory(ctx context.Context, code string) ([]model.Book, error) {
	return m.byCatFn(ctx, code)
}

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), &model.Book{Isbn: "978-1"}); !errors.Is(err, booksvc.ErrBadInput) {
		t.Fatalf("expected ErrBadInput for empty title, got %v", err)
	}
	if _, err := s.Create(context.Background(), &model.Book{Title: "Clean Code"}); !errors.Is(err, booksvc.ErrBadInput) {
		t.Fatalf("expected ErrBadInput for empty isbn, got %v", err)
	}
}

func TestCreate_IsbnConflict(t *testing.T) {
	m := &repoMock{
		byIsbnFn: func(ctx context.Context, isbn string) (*model.Book, error) {
			return &model.Book{ID: 7, Isbn: isbn}, nil
		},
	}
	s := booksvc.New(m)
	_, err := s.Create(context.Background(), &model.Book{Title: "Clean Code", Isbn: "978-1"})
	if !errors.Is(err, booksvc.ErrIsbnTaken) {
		t.Fatalf("expected ErrIsbnTaken, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		byIsbnFn: func(ctx context.Context, isbn string) (*model.Book, error) {
			return nil, sql.ErrNoRows
		},
		createFn: func(ctx context.Context, b *model.Book) error {
			b.ID = 42
			return nil
		},
	}
	s := booksvc.New(m)
	out, err := s.Create(context.Background(), &model.Book{Title: "Clean Code", Isbn: "978-1"})
	if err != nil || out.ID != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", out, err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, b *model.Book) (bool, error) { return false, nil },
	}
	s := booksvc.New(m)
	_, err := s.Update(context.Background(), &model.Book{ID: 99, Title: "X", Isbn: "978-9"})
	if !errors.Is(err, booksvc.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestByIsbn_NotFound(t *testing.T) {
	m := &repoMock{
		byIsbnFn: func(ctx context.Context, isbn string) (*model.Book, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := booksvc.New(m)
	if _, err := s.ByIsbn(context.Background(), "978-0"); !errors.Is(err, booksvc.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		deleteFn:  func(ctx context.Context, id int64) error { return nil },
		existsFn:  func(ctx context.Context, id int64) (bool, error) { return true, nil },
		byTitleFn: func(ctx context.Context, title string) ([]model.Book, error) { return nil, nil },
		byCatFn:   func(ctx context.Context, code string) ([]model.Book, error) { return nil, nil },
	}
	s := booksvc.New(m)

	if err := s.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if ok, err := s.Exists(context.Background(), 7); err != nil || !ok {
		t.Fatalf("Exists got %v %v; want true nil", ok, err)
	}
	if _, err := s.SearchByTitle(context.Background(), "code"); err != nil {
		t.Fatalf("SearchByTitle error: %v", err)
	}
	if _, err := s.ByCategory(context.Background(), "PROG"); err != nil {
		t.Fatalf("ByCategory error: %v", err)
	}
}
