// model/book.go
package model

import "time"

type Book struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Isbn         string     `json:"isbn"`
	Author       string     `json:"author"`
	CategoryCode *string    `json:"category_code,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	RegisterDate time.Time  `json:"register_date"`
	TotalCopies  int64      `json:"total_copies"`
}

// BookRef is the book summary carried on a loan.
type BookRef struct {
	ID    int64  `json:"id"`
	Isbn  string `json:"isbn"`
	Title string `json:"title"`
}
