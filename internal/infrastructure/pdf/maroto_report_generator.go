// Package pdf genera el reporte imprimible de movimientos de stock para el
// panel de administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Antes | Δ | Después | Motivo │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/application/history"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ history.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa history.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF del historial y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(
	_ context.Context,
	entries []dto.LedgerEntryDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(entries)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range entries {
		m.AddRows(entryRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación y total de filas.
func headerRow(generatedAt time.Time, count int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("MOVIMIENTOS DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ledger de auditoría de inventario", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d movimientos", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Antes", 1, align.Right),
		h("Cambio", 1, align.Right),
		h("Después", 1, align.Right),
		h("Motivo", 2, align.Left),
	)
}

// entryRow: una fila por movimiento del ledger.
func entryRow(e dto.LedgerEntryDTO) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(e.CreatedAt.Format("02/01/2006 15:04"), 2, align.Left),
		cell(e.ProductName, 3, align.Left),
		cell(e.TypeLabel, 2, align.Left),
		cell(strconv.Itoa(e.QuantityBefore), 1, align.Right),
		cell(signedQuantity(e.QuantityChange), 1, align.Right),
		cell(strconv.Itoa(e.QuantityAfter), 1, align.Right),
		cell(e.Reason, 2, align.Left),
	)
}

// signedQuantity incluye el signo + en cambios positivos para lectura rápida.
func signedQuantity(change int) string {
	if change > 0 {
		return "+" + strconv.Itoa(change)
	}
	return strconv.Itoa(change)
}
