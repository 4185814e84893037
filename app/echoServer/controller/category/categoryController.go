package category

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	cats "github.com/ulrichb237/library2/service/category"
)

type Controller struct {
	Svc cats.Service
	Log *slog.Logger
}

// GET /v1/categories
func (h *Controller) List(c echo.Context) error {
	out, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("category list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
