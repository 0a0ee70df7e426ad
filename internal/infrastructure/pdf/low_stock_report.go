// Package pdf genera el reporte imprimible de stock bajo con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Unidad | Cantidad | Umbral | Severidad    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totales por severidad                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bodega-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// LowStockReportGenerator genera el PDF de la lista de stock bajo.
type LowStockReportGenerator struct{}

// NewLowStockReportGenerator construye el generador.
func NewLowStockReportGenerator() *LowStockReportGenerator { return &LowStockReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *LowStockReportGenerator) Generate(appName string, items []dto.LowStockItemDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock bajo", true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de stock bajo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9}))
	}
	return row.New(8).Add(
		header("Artículo", 5),
		header("Unidad", 2),
		header("Cantidad", 2),
		header("Umbral", 1),
		header("Severidad", 2),
	)
}

func itemRow(it dto.LowStockItemDTO) core.Row {
	color := colorGray
	label := "Stock bajo"
	if it.Severity == "out_of_stock" {
		color = colorDanger
		label = "Agotado"
	}
	return row.New(7).Add(
		col.New(5).Add(text.New(it.Name, props.Text{Size: 9})),
		col.New(2).Add(text.New(it.Unit, props.Text{Size: 9})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 9})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Threshold), props.Text{Size: 9})),
		col.New(2).Add(text.New(label, props.Text{Size: 9, Color: color})),
	)
}

func summaryRow(items []dto.LowStockItemDTO) core.Row {
	var out, low int
	for _, it := range items {
		if it.Severity == "out_of_stock" {
			out++
		} else {
			low++
		}
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Agotados: %d    Stock bajo: %d    Total: %d", out, low, len(items)), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
	)
}
