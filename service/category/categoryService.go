package categorysvc

import (
	"context"

	"github.com/ulrichb237/library2/model"
)

type Repo interface {
	All(ctx context.Context) ([]model.Category, error)
}

type Service interface {
	All(ctx context.Context) ([]model.Category, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) All(ctx context.Context) ([]model.Category, error) { return s.r.All(ctx) }
