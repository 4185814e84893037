package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	bs "github.com/ulrichb237/library2/service/book"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/books
func (h *Controller) Create(c echo.Context) error {
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	b, err := req.ToModel()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date"})
	}

	out, err := h.Svc.Create(c.Request().Context(), b)
	if err != nil {
		switch {
		case errors.Is(err, bs.ErrIsbnTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "isbn already registered"})
		case errors.Is(err, bs.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("book create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, out)
}

// PUT /v1/books/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	b, err := req.ToModel()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date"})
	}
	b.ID = id

	out, err := h.Svc.Update(c.Request().Context(), b)
	if err != nil {
		switch {
		case errors.Is(err, bs.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case errors.Is(err, bs.ErrIsbnTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "isbn already registered"})
		default:
			h.Log.Error("book update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /v1/books/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("book delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /v1/books/search?title=
func (h *Controller) SearchByTitle(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "title is required"})
	}
	books, err := h.Svc.SearchByTitle(c.Request().Context(), title)
	if err != nil {
		h.Log.Error("book search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": books})
}

// GET /v1/books/isbn?isbn=
func (h *Controller) ByIsbn(c echo.Context) error {
	isbn := c.QueryParam("isbn")
	if isbn == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "isbn is required"})
	}
	b, err := h.Svc.ByIsbn(c.Request().Context(), isbn)
	if err != nil {
		if errors.Is(err, bs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book by isbn", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, b)
}

// GET /v1/books/category?code=
func (h *Controller) ByCategory(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "code is required"})
	}
	books, err := h.Svc.ByCategory(c.Request().Context(), code)
	if err != nil {
		h.Log.Error("book by category", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": books})
}
