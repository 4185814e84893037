package categoryrepo

import (
	"context"
	"database/sql"

	"github.com/ulrichb237/library2/model"
)

type Repo interface {
	All(ctx context.Context) ([]model.Category, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) All(ctx context.Context) ([]model.Category, error) {
	const q = `
	SELECT code, label
	FROM categories
	ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Code, &c.Label); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
