package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/infrastructure/export"
	"github.com/jhoicas/bodega-api/internal/infrastructure/pdf"
)

// Cota alta para descargas: los exportes no se paginan.
const exportMaxRows = 100000

// ExportHandler genera descargas de movimientos y reportes (CSV, XML, PDF).
type ExportHandler struct {
	ledgerUC  *ledger.LedgerUseCase
	reportsUC *reports.ReportUseCase
	pdfGen    *pdf.LowStockReportGenerator
	appName   string
}

// NewExportHandler construye el handler.
func NewExportHandler(ledgerUC *ledger.LedgerUseCase, reportsUC *reports.ReportUseCase, pdfGen *pdf.LowStockReportGenerator, appName string) *ExportHandler {
	return &ExportHandler{ledgerUC: ledgerUC, reportsUC: reportsUC, pdfGen: pdfGen, appName: appName}
}

// MovementsCSV godoc
// @Summary      Exportar movimientos a CSV
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Param        item_id  query  string  false  "Filtrar por artículo"
// @Param        from     query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {string}  string
// @Router       /api/exports/movements.csv [get]
func (h *ExportHandler) MovementsCSV(c *fiber.Ctx) error {
	movs, err := h.queryMovements(c)
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.MovementsCSV(movs)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, "text/csv; charset=utf-8", fmt.Sprintf("movimientos_%s.csv", time.Now().Format("20060102")))
}

// MovementsXML godoc
// @Summary      Exportar movimientos a XML
// @Tags         exports
// @Security     Bearer
// @Produce      application/xml
// @Param        item_id  query  string  false  "Filtrar por artículo"
// @Param        from     query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {string}  string
// @Router       /api/exports/movements.xml [get]
func (h *ExportHandler) MovementsXML(c *fiber.Ctx) error {
	movs, err := h.queryMovements(c)
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.MovementsXML(movs)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, "application/xml; charset=utf-8", fmt.Sprintf("movimientos_%s.xml", time.Now().Format("20060102")))
}

// LowStockCSV godoc
// @Summary      Exportar stock bajo a CSV
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/exports/low-stock.csv [get]
func (h *ExportHandler) LowStockCSV(c *fiber.Ctx) error {
	rows, err := h.reportsUC.LowStockList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.LowStockCSV(rows)
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, "text/csv; charset=utf-8", fmt.Sprintf("stock_bajo_%s.csv", time.Now().Format("20060102")))
}

// LowStockPDF godoc
// @Summary      Exportar stock bajo a PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string
// @Router       /api/exports/low-stock.pdf [get]
func (h *ExportHandler) LowStockPDF(c *fiber.Ctx) error {
	rows, err := h.reportsUC.LowStockList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.pdfGen.Generate(h.appName, rows, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return sendDownload(c, data, "application/pdf", fmt.Sprintf("stock_bajo_%s.pdf", time.Now().Format("20060102")))
}

func (h *ExportHandler) queryMovements(c *fiber.Ctx) ([]dto.MovementDTO, error) {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	movements, _, err := h.ledgerUC.GetMovementHistory(c.Context(), filter, exportMaxRows, 0)
	if err != nil {
		return nil, err
	}
	return toMovementDTOs(movements), nil
}

func sendDownload(c *fiber.Ctx, data []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
