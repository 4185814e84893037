package loansvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ulrichb237/library2/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrLoanExists       ErrCode = "LOAN_EXISTS"
	ErrNoOpenLoan       ErrCode = "NO_OPEN_LOAN"
	ErrBookNotFound     ErrCode = "BOOK_NOT_FOUND"
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrBadPeriod        ErrCode = "BAD_PERIOD"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the domain error code, "" for infrastructure errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	ByPairAndStatus(ctx context.Context, bookID, customerID int64, status model.LoanStatus) (*model.Loan, error)
	ByID(ctx context.Context, id int64) (*model.Loan, error)
	ByEndDateBefore(ctx context.Context, maxEndDate time.Time) ([]model.Loan, error)
	ByCustomerEmailAndStatus(ctx context.Context, email string, status model.LoanStatus) ([]model.Loan, error)
	Insert(ctx context.Context, bookID, customerID int64, begin, end time.Time) (int64, error)
	SetStatus(ctx context.Context, id int64, status model.LoanStatus) error
}

// BookDirectory and CustomerDirectory validate the loan's references.
type BookDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CustomerDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	// Request opens a loan for the (book, customer) pair. Fails with
	// ErrLoanExists when the pair already has an OPEN loan.
	Request(ctx context.Context, bookID, customerID int64, begin, end time.Time) (*model.Loan, error)

	// Close flips the pair's OPEN loan to CLOSE. The row is kept;
	// ErrNoOpenLoan when there is nothing to close.
	Close(ctx context.Context, bookID, customerID int64) (*model.Loan, error)

	// EndingBefore lists loans of any status with end_date before the date.
	EndingBefore(ctx context.Context, maxEndDate time.Time) ([]model.Loan, error)

	// OpenLoansByEmail lists the customer's OPEN loans, latest begin date
	// first. Email matches case-insensitively.
	OpenLoansByEmail(ctx context.Context, email string) ([]model.Loan, error)
}

type service struct {
	r  Repo
	bd BookDirectory
	cd CustomerDirectory
}

func New(r Repo, bd BookDirectory, cd CustomerDirectory) Service {
	return &service{r: r, bd: bd, cd: cd}
}

func (s *service) Request(ctx context.Context, bookID, customerID int64, begin, end time.Time) (*model.Loan, error) {
	if end.Before(begin) {
		return nil, makeErr(ErrBadPeriod)
	}

	ok, err := s.bd.Exists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrBookNotFound)
	}

	ok, err = s.cd.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrCustomerNotFound)
	}

	_, err = s.r.ByPairAndStatus(ctx, bookID, customerID, model.LoanOpen)
	if err == nil {
		return nil, makeErr(ErrLoanExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	id, err := s.r.Insert(ctx, bookID, customerID, begin, end)
	if err != nil {
		// A concurrent request may win the check-then-act race; the partial
		// unique index on open pairs turns that into a unique violation.
		if isUniqueViolation(err) {
			return nil, makeErr(ErrLoanExists)
		}
		return nil, err
	}
	return s.r.ByID(ctx, id)
}

func (s *service) Close(ctx context.Context, bookID, customerID int64) (*model.Loan, error) {
	loan, err := s.r.ByPairAndStatus(ctx, bookID, customerID, model.LoanOpen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNoOpenLoan)
		}
		return nil, err
	}

	if err := s.r.SetStatus(ctx, loan.ID, model.LoanClose); err != nil {
		return nil, err
	}
	return s.r.ByID(ctx, loan.ID)
}

func (s *service) EndingBefore(ctx context.Context, maxEndDate time.Time) ([]model.Loan, error) {
	return s.r.ByEndDateBefore(ctx, maxEndDate)
}

func (s *service) OpenLoansByEmail(ctx context.Context, email string) ([]model.Loan, error) {
	return s.r.ByCustomerEmailAndStatus(ctx, email, model.LoanOpen)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
