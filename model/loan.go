// model/loan.go
package model

import "time"

type LoanStatus string

const (
	LoanOpen  LoanStatus = "OPEN"
	LoanClose LoanStatus = "CLOSE"
)

// Loan is the lending relationship between one book and one customer.
// The (BookID, CustomerID) pair identifies the current relationship; at most
// one row per pair may be OPEN at a time. Closing is logical: the row stays,
// status flips to CLOSE.
type Loan struct {
	ID         int64       `json:"id"`
	BookID     int64       `json:"book_id"`
	CustomerID int64       `json:"customer_id"`
	Book       BookRef     `json:"book"`
	Customer   CustomerRef `json:"customer"`
	BeginDate  time.Time   `json:"begin_date"`
	EndDate    time.Time   `json:"end_date"`
	Status     LoanStatus  `json:"status"`
}
