// service/customer/customer_service_test.go
package customersvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ulrichb237/library2/model"
	customersvc "github.com/ulrichb237/library2/service/customer"
)

type mockRepo struct {
	createFn     func(ctx context.Context, c *model.Customer) error
	updateFn     func(ctx context.Context, c *model.Customer) (bool, error)
	deleteFn     func(ctx context.Context, id int64) error
	existsFn     func(ctx context.Context, id int64) (bool, error)
	byEmailFn    func(ctx context.Context, email string) (*model.Customer, error)
	byLastNameFn func(ctx context.Context, lastName string) ([]model.Customer, error)
	listFn       func(ctx context.Context, offset, limit int) ([]model.Customer, int64, error)
}

var _ customersvc.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, c *model.Customer) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}

func (m *mockRepo) Update(ctx context.Context, c *model.Customer) (bool, error) {
	if m.updateFn == nil {
		return true, nil
	}
	return m.updateFn(ctx, c)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn == nil {
		return false, nil
	}
	return m.existsFn(ctx, id)
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if m.byEmailFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByLastName(ctx context.Context, lastName string) ([]model.Customer, error) {
	if m.byLastNameFn == nil {
		return nil, nil
	}
	return m.byLastNameFn(ctx, lastName)
}

func (m *mockRepo) List(ctx context.Context, offset, limit int) ([]model.Customer, int64, error) {
	if m.listFn == nil {
		return nil, 0, nil
	}
	return m.listFn(ctx, offset, limit)
}

// --- tests ---

func TestCreate_Success(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			c.ID = 42
			return nil
		},
	}
	s := customersvc.New(m)

	out, err := s.Create(context.Background(), &model.Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), out.ID)
}

func TestCreate_EmailTaken(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{ID: 7, Email: email}, nil
		},
	}
	s := customersvc.New(m)

	_, err := s.Create(context.Background(), &model.Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ADA@X.COM",
	})
	require.ErrorIs(t, err, customersvc.ErrEmailTaken)
}

func TestCreate_BadInput(t *testing.T) {
	s := customersvc.New(&mockRepo{})

	_, err := s.Create(context.Background(), &model.Customer{LastName: "Lovelace", Email: "ada@x.com"})
	require.ErrorIs(t, err, customersvc.ErrBadInput)

	_, err = s.Create(context.Background(), &model.Customer{FirstName: "Ada", LastName: "Lovelace"})
	require.ErrorIs(t, err, customersvc.ErrBadInput)
}

func TestUpdate_NotFound(t *testing.T) {
	m := &mockRepo{
		updateFn: func(ctx context.Context, c *model.Customer) (bool, error) { return false, nil },
	}
	s := customersvc.New(m)

	_, err := s.Update(context.Background(), &model.Customer{ID: 99, FirstName: "A", LastName: "B", Email: "a@x.com"})
	require.ErrorIs(t, err, customersvc.ErrNotFound)
}

func TestByEmail_NotFound(t *testing.T) {
	s := customersvc.New(&mockRepo{})

	_, err := s.ByEmail(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, customersvc.ErrNotFound)
}

func TestList_ClampsPaging(t *testing.T) {
	var gotOffset, gotLimit int
	m := &mockRepo{
		listFn: func(ctx context.Context, offset, limit int) ([]model.Customer, int64, error) {
			gotOffset, gotLimit = offset, limit
			return []model.Customer{{ID: 1}}, 1, nil
		},
	}
	s := customersvc.New(m)

	page, err := s.List(context.Background(), -3, 0)
	require.NoError(t, err)
	require.Equal(t, 0, gotOffset)
	require.Equal(t, 20, gotLimit)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
}
