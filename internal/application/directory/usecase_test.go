package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/directory"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) List(_ context.Context, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, int, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		if filter.Status != "" && it.Status != filter.Status {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeItemRepo) Create(_ context.Context, it *entity.Item) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

// Update persiste metadatos pero nunca la cantidad, igual que el repositorio
// real de PostgreSQL.
func (r *fakeItemRepo) Update(_ context.Context, it *entity.Item) error {
	existing, ok := r.items[it.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	qty := existing.Quantity
	cp := *it
	cp.Quantity = qty
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeItemRepo) ApplyDelta(_ context.Context, id string, delta int64) (int64, error) {
	it, ok := r.items[id]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	it.Quantity += delta
	return it.Quantity, nil
}

type fakeCategoryRepo struct {
	cats map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.cats))
	for _, c := range r.cats {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.cats, id)
	return nil
}

type fakeSupplierRepo struct {
	sups map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{sups: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := r.sups[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) List(_ context.Context, _ string) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.sups))
	for _, s := range r.sups {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.sups[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.sups[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	delete(r.sups, id)
	return nil
}

func newUC() (*directory.DirectoryUseCase, *fakeItemRepo, *fakeCategoryRepo, *fakeSupplierRepo) {
	items := newFakeItemRepo()
	cats := newFakeCategoryRepo()
	sups := newFakeSupplierRepo()
	return directory.NewDirectoryUseCase(items, cats, sups), items, cats, sups
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_NaceConCantidadCero(t *testing.T) {
	uc, _, _, _ := newUC()

	item, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:              "Tuerca M8",
		Unit:              "unidad",
		LowStockThreshold: 10,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, int64(0), item.Quantity, "el stock inicial se carga con un movimiento, no en el alta")
	assert.Equal(t, "out_of_stock", item.StockLevel)
	assert.Equal(t, entity.ItemStatusActive, item.Status)
}

func TestCreateItem_CategoriaInexistenteFalla(t *testing.T) {
	uc, _, _, _ := newUC()

	catID := "no-existe"
	_, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:       "Tuerca M8",
		Unit:       "unidad",
		CategoryID: &catID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateItem_SinNombreEsInvalido(t *testing.T) {
	uc, _, _, _ := newUC()

	_, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{Unit: "unidad"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateItem_NoTocaLaCantidad(t *testing.T) {
	uc, items, _, _ := newUC()

	created, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name: "Tuerca M8", Unit: "unidad", LowStockThreshold: 10,
	})
	require.NoError(t, err)

	// Stock cargado por fuera del directorio (vía ledger).
	_, err = items.ApplyDelta(context.Background(), created.ID, 40)
	require.NoError(t, err)

	updated, err := uc.UpdateItem(context.Background(), created.ID, dto.UpdateItemRequest{
		Name: "Tuerca M8 galvanizada", Unit: "caja", LowStockThreshold: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tuerca M8 galvanizada", updated.Name)
	assert.Equal(t, int64(40), items.items[created.ID].Quantity,
		"actualizar metadatos no debe alterar la cantidad")
}

func TestUpdateItem_EstadoDesconocidoEsInvalido(t *testing.T) {
	uc, _, _, _ := newUC()

	created, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name: "Tuerca M8", Unit: "unidad",
	})
	require.NoError(t, err)

	_, err = uc.UpdateItem(context.Background(), created.ID, dto.UpdateItemRequest{
		Name: "Tuerca M8", Unit: "unidad", Status: "borrado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestArchiveItem_ConservaElArticulo(t *testing.T) {
	uc, items, _, _ := newUC()

	created, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name: "Tuerca M8", Unit: "unidad",
	})
	require.NoError(t, err)

	require.NoError(t, uc.ArchiveItem(context.Background(), created.ID))

	stored := items.items[created.ID]
	require.NotNil(t, stored, "archivar no borra la fila")
	assert.Equal(t, entity.ItemStatusArchived, stored.Status)
}

func TestArchiveItem_InexistenteDevuelveNotFound(t *testing.T) {
	uc, _, _, _ := newUC()
	err := uc.ArchiveItem(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCategorias_CicloCompleto(t *testing.T) {
	uc, _, _, _ := newUC()
	ctx := context.Background()

	cat, err := uc.CreateCategory(ctx, dto.CategoryRequest{Name: "Ferretería"})
	require.NoError(t, err)

	updated, err := uc.UpdateCategory(ctx, cat.ID, dto.CategoryRequest{Name: "Ferretería general", Description: "tornillería y afines"})
	require.NoError(t, err)
	assert.Equal(t, "Ferretería general", updated.Name)

	list, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.DeleteCategory(ctx, cat.ID))
	list, err = uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProveedores_CicloCompleto(t *testing.T) {
	uc, _, _, _ := newUC()
	ctx := context.Background()

	sup, err := uc.CreateSupplier(ctx, dto.SupplierRequest{Name: "Distribuidora Norte", Email: "ventas@norte.example"})
	require.NoError(t, err)

	updated, err := uc.UpdateSupplier(ctx, sup.ID, dto.SupplierRequest{Name: "Distribuidora Norte SA", Phone: "555-0101"})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Norte SA", updated.Name)

	require.NoError(t, uc.DeleteSupplier(ctx, sup.ID))
	_, errDel := uc.UpdateSupplier(ctx, sup.ID, dto.SupplierRequest{Name: "x"})
	assert.ErrorIs(t, errDel, domain.ErrNotFound)
}
