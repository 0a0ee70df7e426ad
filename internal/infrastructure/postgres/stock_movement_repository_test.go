package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

func TestBuildMovementWhere_SinFiltros(t *testing.T) {
	where, args := buildMovementWhere(repository.MovementFilter{})
	assert.Equal(t, " WHERE 1=1", where)
	assert.Empty(t, args)
}

func TestBuildMovementWhere_TodosLosFiltros(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	where, args := buildMovementWhere(repository.MovementFilter{
		ItemID:     "item-1",
		SupplierID: "sup-1",
		Direction:  "out",
		From:       &from,
		To:         &to,
		Search:     "venta",
	})

	assert.Equal(t,
		" WHERE 1=1 AND item_id = $1 AND supplier_id = $2 AND direction = $3"+
			" AND occurred_on >= $4 AND occurred_on <= $5"+
			" AND (reason ILIKE $6 OR remarks ILIKE $6)",
		where)
	assert.Equal(t, []any{"item-1", "sup-1", "out", from, to, "%venta%"}, args)
}

func TestBuildMovementWhere_PlaceholdersConsecutivos(t *testing.T) {
	// Saltear filtros intermedios no debe dejar huecos en la numeración.
	where, args := buildMovementWhere(repository.MovementFilter{
		Direction: "in",
		Search:    "recepción",
	})
	assert.Equal(t, " WHERE 1=1 AND direction = $1 AND (reason ILIKE $2 OR remarks ILIKE $2)", where)
	assert.Len(t, args, 2)
}
