package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"branch-loans-api/internal/usecase/stats"
)

type StatsHandler struct{ uc *stats.Usecase }

func NewStatsHandler(uc *stats.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

func (h *StatsHandler) GetStats(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
