package loan

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	ls "github.com/ulrichb237/library2/service/loan"
)

type Controller struct {
	Svc ls.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/loans
func (h *Controller) Create(c echo.Context) error {
	var req LoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	begin, end, err := req.Period()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date"})
	}

	loan, err := h.Svc.Request(c.Request().Context(), req.BookID, req.CustomerID, begin, end)
	if err != nil {
		switch ls.Code(err) {
		case ls.ErrLoanExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "loan already exists"})
		case ls.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case ls.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case ls.ErrBadPeriod:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end date before begin date"})
		default:
			h.Log.Error("loan create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, loan)
}

// POST /v1/loans/close
func (h *Controller) Close(c echo.Context) error {
	var req LoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	loan, err := h.Svc.Close(c.Request().Context(), req.BookID, req.CustomerID)
	if err != nil {
		if ls.Code(err) == ls.ErrNoOpenLoan {
			// nothing to close
			return c.NoContent(http.StatusNoContent)
		}
		h.Log.Error("loan close", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, loan)
}

// GET /v1/loans/overdue?date=2006-01-02
func (h *Controller) Overdue(c echo.Context) error {
	date, err := time.Parse(time.DateOnly, c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date"})
	}

	loans, err := h.Svc.EndingBefore(c.Request().Context(), date)
	if err != nil {
		h.Log.Error("loans overdue", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": loans})
}

// GET /v1/loans/customer?email=a@x.com
func (h *Controller) CustomerLoans(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email is required"})
	}

	loans, err := h.Svc.OpenLoansByEmail(c.Request().Context(), email)
	if err != nil {
		h.Log.Error("customer loans", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": loans})
}
