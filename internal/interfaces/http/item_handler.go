package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/directory"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ItemHandler maneja el catálogo de artículos. La cantidad nunca se edita por
// esta vía: nace en cero y solo cambia vía movimientos de stock.
type ItemHandler struct {
	uc *directory.DirectoryUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *directory.DirectoryUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name y unit obligatorios; la cantidad inicial siempre es 0"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary      Actualizar metadatos de un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "metadatos; quantity no es editable"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Archive godoc
// @Summary      Archivar un artículo
// @Description  Los artículos archivados se conservan con su historial; no se
//               borran filas del libro.
// @Tags         items
// @Security     Bearer
// @Param        id  path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.ArchiveItem(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get godoc
// @Summary      Obtener un artículo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        status       query  string  false  "active | archived"
// @Param        search       query  string  false  "Texto libre sobre nombre y SKU"
// @Param        limit        query  int     false  "Tamaño de página (máx 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if v := c.Query("category_id"); v != "" {
		filter.CategoryID = &v
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	out, err := h.uc.ListItems(c.Context(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
