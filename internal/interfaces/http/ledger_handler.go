package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/internal/domain/stock"
)

// LedgerHandler maneja las peticiones HTTP del libro de stock (protegido).
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "item_id, quantity, occurred_on (YYYY-MM-DD); supplier_id, unit_cost y remarks opcionales"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *LedgerHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	occurredOn, ok := parseDate(in.OccurredOn)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "occurred_on debe tener formato YYYY-MM-DD"})
	}
	res, err := h.uc.RecordStockIn(c.Context(), ledger.MovementInput{
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
		Remarks:    in.Remarks,
		UnitCost:   in.UnitCost,
		OccurredOn: occurredOn,
		RecordedBy: GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toMovementResult(c, in.ItemID, res))
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Falla con 409 e informa el faltante si la salida dejaría la
//               cantidad negativa; en ese caso no se asienta ningún movimiento.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "item_id, quantity, reason, occurred_on (YYYY-MM-DD); remarks opcional"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/out [post]
func (h *LedgerHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	occurredOn, ok := parseDate(in.OccurredOn)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "occurred_on debe tener formato YYYY-MM-DD"})
	}
	res, err := h.uc.RecordStockOut(c.Context(), ledger.MovementInput{
		ItemID:     in.ItemID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		Remarks:    in.Remarks,
		OccurredOn: occurredOn,
		RecordedBy: GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toMovementResult(c, in.ItemID, res))
}

// Movements godoc
// @Summary      Historial de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "Filtrar por artículo"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        direction    query  string  false  "in | out"
// @Param        from         query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        search       query  string  false  "Texto libre sobre propósito y observaciones"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/stock/movements [get]
func (h *LedgerHandler) Movements(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de fechas inválido (YYYY-MM-DD)"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	movements, total, err := h.uc.GetMovementHistory(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementListResponse{
		Movements: toMovementDTOs(movements),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// ItemStock godoc
// @Summary      Stock actual de un artículo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{id} [get]
func (h *LedgerHandler) ItemStock(c *fiber.Ctx) error {
	item, err := h.uc.GetItemStock(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"item_id":             item.ID,
		"quantity":            item.Quantity,
		"low_stock_threshold": item.LowStockThreshold,
		"stock_level":         string(stock.Classify(item.Quantity, item.LowStockThreshold)),
	})
}

func (h *LedgerHandler) toMovementResult(c *fiber.Ctx, itemID string, res *ledger.MovementResult) dto.MovementResultResponse {
	out := dto.MovementResultResponse{
		MovementID:  res.MovementID,
		NewQuantity: res.NewQuantity,
	}
	// El nivel derivado viaja en la respuesta para que la UI alerte sin otra
	// consulta; si la lectura del umbral falla se omite, no se anula el alta.
	if item, err := h.uc.GetItemStock(c.Context(), itemID); err == nil {
		out.StockLevel = string(stock.Classify(res.NewQuantity, item.LowStockThreshold))
	}
	return out
}

func toMovementDTOs(movements []*entity.StockMovement) []dto.MovementDTO {
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementDTO{
			ID:         m.ID,
			ItemID:     m.ItemID,
			Direction:  m.Direction,
			Quantity:   m.Quantity,
			OccurredOn: m.OccurredOn.Format("2006-01-02"),
			RecordedAt: m.RecordedAt,
			SupplierID: m.SupplierID,
			Reason:     m.Reason,
			Remarks:    m.Remarks,
			UnitCost:   m.UnitCost,
			RecordedBy: m.RecordedBy,
		})
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func movementFilterFromQuery(c *fiber.Ctx) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		ItemID:     c.Query("item_id"),
		SupplierID: c.Query("supplier_id"),
		Direction:  c.Query("direction"),
		Search:     c.Query("search"),
	}
	if s := c.Query("from"); s != "" {
		t, ok := parseDate(s)
		if !ok {
			return filter, fiber.ErrBadRequest
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, ok := parseDate(s)
		if !ok {
			return filter, fiber.ErrBadRequest
		}
		filter.To = &t
	}
	return filter, nil
}
