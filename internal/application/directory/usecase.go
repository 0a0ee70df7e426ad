// Package directory implementa el Item Directory: CRUD de artículos,
// categorías y proveedores. Nunca toca Item.Quantity: el stock solo cambia
// registrando movimientos a través del ledger.
package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/internal/domain/stock"
)

// DirectoryUseCase casos de uso del directorio de inventario.
type DirectoryUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *DirectoryUseCase {
	return &DirectoryUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// ── Items ─────────────────────────────────────────────────────────────────────

// CreateItem da de alta un artículo con cantidad 0; el stock inicial se carga
// con un movimiento de entrada, nunca aquí.
func (uc *DirectoryUseCase) CreateItem(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Unit == "" || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	item := &entity.Item{
		ID:                uuid.New().String(),
		Name:              in.Name,
		SKU:               in.SKU,
		CategoryID:        in.CategoryID,
		Unit:              in.Unit,
		Quantity:          0,
		LowStockThreshold: in.LowStockThreshold,
		Status:            entity.ItemStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItem actualiza metadatos del artículo. La cantidad actual se preserva
// por contrato del repositorio.
func (uc *DirectoryUseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Unit == "" || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	item.Name = in.Name
	item.SKU = in.SKU
	item.CategoryID = in.CategoryID
	item.Unit = in.Unit
	item.LowStockThreshold = in.LowStockThreshold
	if in.Status != "" {
		if in.Status != entity.ItemStatusActive && in.Status != entity.ItemStatusArchived {
			return nil, domain.ErrInvalidInput
		}
		item.Status = in.Status
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ArchiveItem marca el artículo como archivado; el historial de movimientos
// se conserva intacto.
func (uc *DirectoryUseCase) ArchiveItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	item.Status = entity.ItemStatusArchived
	item.UpdatedAt = time.Now()
	return uc.itemRepo.Update(ctx, item)
}

// GetItem devuelve un artículo por ID.
func (uc *DirectoryUseCase) GetItem(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// ListItems lista artículos con filtros y paginación.
func (uc *DirectoryUseCase) ListItems(ctx context.Context, filter repository.ItemFilter, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	items, total, err := uc.itemRepo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, it := range items {
		out.Items = append(out.Items, *toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		SKU:               it.SKU,
		CategoryID:        it.CategoryID,
		Unit:              it.Unit,
		Quantity:          it.Quantity,
		LowStockThreshold: it.LowStockThreshold,
		StockLevel:        string(stock.Classify(it.Quantity, it.LowStockThreshold)),
		Status:            it.Status,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (uc *DirectoryUseCase) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

func (uc *DirectoryUseCase) UpdateCategory(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	cat.Name = in.Name
	cat.Description = in.Description
	cat.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

func (uc *DirectoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	cat, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *DirectoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (uc *DirectoryUseCase) CreateSupplier(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sup := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

func (uc *DirectoryUseCase) UpdateSupplier(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	sup, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, domain.ErrNotFound
	}
	sup.Name = in.Name
	sup.Contact = in.Contact
	sup.Phone = in.Phone
	sup.Email = in.Email
	sup.Address = in.Address
	sup.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

func (uc *DirectoryUseCase) DeleteSupplier(ctx context.Context, id string) error {
	sup, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sup == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(ctx, id)
}

func (uc *DirectoryUseCase) ListSuppliers(ctx context.Context, search string) ([]dto.SupplierResponse, error) {
	sups, err := uc.supplierRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(sups))
	for _, s := range sups {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Phone:     s.Phone,
		Email:     s.Email,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}
