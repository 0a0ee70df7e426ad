package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)

// loadSchemaColumns carga migrations/schema.sql y devuelve, por tabla, la
// línea de definición de cada columna.
func loadSchemaColumns(t *testing.T) map[string]map[string]string {
	t.Helper()

	raw, err := os.ReadFile("../../../migrations/schema.sql")
	require.NoError(t, err)

	tables := make(map[string]map[string]string)
	for _, m := range createTableRe.FindAllStringSubmatch(string(raw), -1) {
		cols := make(map[string]string)
		for _, line := range strings.Split(m[2], "\n") {
			line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
			if line == "" || strings.HasPrefix(line, "--") {
				continue
			}
			fields := strings.Fields(line)
			cols[fields[0]] = line
		}
		tables[m[1]] = cols
	}
	return tables
}

func columnDef(t *testing.T, tables map[string]map[string]string, table, column string) string {
	t.Helper()
	cols, ok := tables[table]
	require.True(t, ok, "tabla %s no definida en el esquema", table)
	def, ok := cols[column]
	require.True(t, ok, "columna %s.%s no definida en el esquema", table, column)
	return def
}

// Los repositorios insertan NULL en los campos de texto opcionales (vía
// nullIfEmpty); el esquema debe admitirlo o todo asiento sin reason o sin
// remarks fallaría con 23502 y la transacción se revertiría.
func TestEsquema_ColumnasOpcionalesAdmitenNull(t *testing.T) {
	tables := loadSchemaColumns(t)

	optional := []struct{ table, column string }{
		{"stock_movements", "reason"},
		{"stock_movements", "remarks"},
		{"stock_movements", "supplier_id"},
		{"stock_movements", "unit_cost"},
		{"items", "sku"},
		{"items", "category_id"},
		{"categories", "description"},
		{"suppliers", "contact"},
		{"suppliers", "phone"},
		{"suppliers", "email"},
		{"suppliers", "address"},
	}
	for _, c := range optional {
		def := columnDef(t, tables, c.table, c.column)
		assert.NotContains(t, def, "NOT NULL", "%s.%s debe admitir NULL", c.table, c.column)
	}
}

// Las columnas que los repositorios nombran en SELECT e INSERT tienen que
// existir en el esquema; en particular updated_at, que users, categories y
// suppliers leen y escriben en cada operación.
func TestEsquema_ColumnasDeLosRepositoriosExisten(t *testing.T) {
	tables := loadSchemaColumns(t)

	repoColumns := map[string][]string{
		"users":           strings.Split(userColumns, ", "),
		"categories":      {"id", "name", "description", "created_at", "updated_at"},
		"suppliers":       strings.Split(supplierColumns, ", "),
		"items":           strings.Split(itemColumns, ", "),
		"stock_movements": strings.Split(movementColumns, ", "),
	}
	for table, columns := range repoColumns {
		for _, column := range columns {
			columnDef(t, tables, table, column)
		}
	}
}
