package book

import (
	"time"

	"github.com/ulrichb237/library2/model"
)

type BookReq struct {
	Title        string  `json:"title" validate:"required"`
	Isbn         string  `json:"isbn" validate:"required"`
	Author       string  `json:"author"`
	CategoryCode *string `json:"category_code,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalCopies  int64   `json:"total_copies" validate:"omitempty,gte=0"`
}

func (r BookReq) ToModel() (*model.Book, error) {
	b := &model.Book{
		Title:        r.Title,
		Isbn:         r.Isbn,
		Author:       r.Author,
		CategoryCode: r.CategoryCode,
		TotalCopies:  r.TotalCopies,
	}
	if r.ReleaseDate != nil {
		t, err := time.Parse(time.DateOnly, *r.ReleaseDate)
		if err != nil {
			return nil, err
		}
		b.ReleaseDate = &t
	}
	return b, nil
}
