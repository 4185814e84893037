package loan

import "time"

// LoanReq identifies the (book, customer) pair plus the lending period.
// Used for both opening and closing a loan; close ignores the dates and
// targets the pair's OPEN row.
type LoanReq struct {
	BookID     int64  `json:"book_id" validate:"required,gt=0"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	BeginDate  string `json:"begin_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r LoanReq) Period() (begin, end time.Time, err error) {
	begin, err = time.Parse(time.DateOnly, r.BeginDate)
	if err != nil {
		return
	}
	end, err = time.Parse(time.DateOnly, r.EndDate)
	return
}
