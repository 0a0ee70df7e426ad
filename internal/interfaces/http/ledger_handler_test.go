package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	apphttp "github.com/jhoicas/bodega-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el handler: sin transacciones reales, el "commit" es
// directo. La semántica transaccional fina se prueba en el caso de uso.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items     map[string]*entity.Item
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]*entity.Item)}
}

func (s *memStore) Run(ctx context.Context, fn func(repository.ItemRepository, repository.StockMovementRepository) error) error {
	return fn(s, memMovRepo{s})
}

func (s *memStore) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *memStore) List(_ context.Context, _ repository.ItemFilter, _, _ int) ([]*entity.Item, int, error) {
	return nil, 0, nil
}

func (s *memStore) Create(_ context.Context, it *entity.Item) error {
	s.items[it.ID] = it
	return nil
}

func (s *memStore) Update(_ context.Context, _ *entity.Item) error { return nil }

func (s *memStore) ApplyDelta(_ context.Context, id string, delta int64) (int64, error) {
	it, ok := s.items[id]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	if it.Quantity+delta < 0 {
		return 0, &domain.InsufficientStockError{ItemID: id, Available: it.Quantity, Requested: -delta}
	}
	it.Quantity += delta
	return it.Quantity, nil
}

// memMovRepo adapta memStore a la interfaz del libro de movimientos.
type memMovRepo struct{ s *memStore }

func (r memMovRepo) Append(_ context.Context, m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r memMovRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memMovRepo) Query(_ context.Context, _ repository.MovementFilter, _, _ int) ([]*entity.StockMovement, int, error) {
	return r.s.movements, len(r.s.movements), nil
}

func (r memMovRepo) AggregateDaily(_ context.Context, _, _ time.Time) ([]repository.DailyFlow, error) {
	return nil, nil
}

// buildLedgerApp monta las rutas de stock sin middleware de auth.
func buildLedgerApp(store *memStore) *fiber.App {
	uc := ledger.NewLedgerUseCase(store, store, memMovRepo{store})
	h := apphttp.NewLedgerHandler(uc)
	app := fiber.New()
	app.Post("/api/stock/in", h.StockIn)
	app.Post("/api/stock/out", h.StockOut)
	app.Get("/api/stock/movements", h.Movements)
	app.Get("/api/stock/items/:id", h.ItemStock)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedItem(store *memStore, id string, qty, threshold int64) {
	store.items[id] = &entity.Item{
		ID:                id,
		Name:              "Tornillo 3/8",
		Unit:              "unidad",
		Quantity:          qty,
		LowStockThreshold: threshold,
		Status:            entity.ItemStatusActive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStockIn_DevuelveCantidadYNivel(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", 0, 10)
	app := buildLedgerApp(store)

	resp := postJSON(t, app, "/api/stock/in", map[string]any{
		"item_id":     "item-1",
		"quantity":    25,
		"occurred_on": "2026-08-20",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		MovementID  string `json:"movement_id"`
		NewQuantity int64  `json:"new_quantity"`
		StockLevel  string `json:"stock_level"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.MovementID)
	assert.Equal(t, int64(25), body.NewQuantity)
	assert.Equal(t, "in_stock", body.StockLevel)
}

func TestStockOut_InsuficienteDevuelve409ConFaltante(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", 3, 10)
	app := buildLedgerApp(store)

	resp := postJSON(t, app, "/api/stock/out", map[string]any{
		"item_id":     "item-1",
		"quantity":    8,
		"reason":      "venta",
		"occurred_on": "2026-08-20",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Code      string `json:"code"`
		Shortfall *int64 `json:"shortfall"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Shortfall)
	assert.Equal(t, int64(5), *body.Shortfall)

	// El rechazo no asienta ningún movimiento ni toca la cantidad.
	assert.Empty(t, store.movements)
	assert.Equal(t, int64(3), store.items["item-1"].Quantity)
}

func TestStockOut_SinPropositoDevuelve400(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", 10, 2)
	app := buildLedgerApp(store)

	resp := postJSON(t, app, "/api/stock/out", map[string]any{
		"item_id":     "item-1",
		"quantity":    1,
		"occurred_on": "2026-08-20",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStockIn_FechaMalFormadaDevuelve400(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", 0, 2)
	app := buildLedgerApp(store)

	resp := postJSON(t, app, "/api/stock/in", map[string]any{
		"item_id":     "item-1",
		"quantity":    5,
		"occurred_on": "20/08/2026",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStockIn_ArticuloInexistenteDevuelve404(t *testing.T) {
	store := newMemStore()
	app := buildLedgerApp(store)

	resp := postJSON(t, app, "/api/stock/in", map[string]any{
		"item_id":     "no-existe",
		"quantity":    5,
		"occurred_on": "2026-08-20",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemStock_DevuelveNivelDerivado(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", 2, 5)
	app := buildLedgerApp(store)

	req := httptest.NewRequest(http.MethodGet, "/api/stock/items/item-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "low_stock", body["stock_level"])
	assert.Equal(t, float64(2), body["quantity"])
}
