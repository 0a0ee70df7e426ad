package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/reports"
)

// ReportHandler expone los reportes derivados del libro de stock.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Artículos en stock bajo o agotados
// @Description  Ordenados por severidad: agotados primero, luego por cercanía
//               relativa al umbral.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.uc.LowStockList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Turnover godoc
// @Summary      Rotación de stock a 90 días
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TurnoverDTO
// @Router       /api/reports/turnover [get]
func (h *ReportHandler) Turnover(c *fiber.Ctx) error {
	rows, err := h.uc.Turnover(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// DeadStock godoc
// @Summary      Stock muerto (sin salidas en 180 días)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DeadStockDTO
// @Router       /api/reports/dead-stock [get]
func (h *ReportHandler) DeadStock(c *fiber.Ctx) error {
	rows, err := h.uc.DeadStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Trends godoc
// @Summary      Series diarias de entradas y salidas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Fecha desde (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha hasta (YYYY-MM-DD)"
// @Success      200   {array}  dto.TrendPointDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/trends [get]
func (h *ReportHandler) Trends(c *fiber.Ctx) error {
	from, okFrom := parseDate(c.Query("from"))
	to, okTo := parseDate(c.Query("to"))
	if !okFrom || !okTo {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son obligatorios (YYYY-MM-DD)"})
	}
	rows, err := h.uc.Trends(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Dashboard godoc
// @Summary      Resumen para el tablero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Auditoría de conciliación
// @Description  Compara la cantidad almacenada de cada artículo contra la suma
//               de su libro de movimientos y devuelve solo las discrepancias.
//               Requiere rol admin.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReconciliationDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/reconcile [get]
func (h *ReportHandler) Reconcile(c *fiber.Ctx) error {
	rows, err := h.uc.Reconcile(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
