// Package pdf genera el reporte de reposición de bajo stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Empresa       │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARÁMETROS: tasa diaria / ventana / total de alertas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Días | Proveedor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota sobre la estimación                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 176, Green: 0, Blue: 32}
)

var _ alerts.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockReport genera el PDF y devuelve sus bytes. Sin alertas igual produce un documento válido.
func (g *MarotoReportGenerator) GenerateLowStockReport(
	ctx context.Context,
	meta alerts.ReportMeta,
	items []dto.LowStockAlert,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de bajo stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(parametersRow(meta, len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay productos activos por debajo de su umbral.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	m.AddRows(alertRows(items)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(meta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título y empresa (izq), fecha de generación (der).
func headerRow(meta alerts.ReportMeta) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Empresa #%d", meta.CompanyID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(meta.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func parametersRow(meta alerts.ReportMeta, total int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Tasa de venta asumida: %d u/día   |   Ventana de actividad: %d días   |   Alertas: %d",
				meta.DailySalesRate, meta.WindowDays, total,
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock/Umbral", 1, align.Center),
		h("Días", 1, align.Center),
		h("Proveedor", 3, align.Left),
	)
}

// alertRows: una fila por alerta, en el mismo orden de la respuesta JSON.
func alertRows(items []dto.LowStockAlert) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, a := range items {
		daysColor := colorGray
		if a.DaysUntilStockout == 0 {
			daysColor = colorDanger
		}
		result = append(result, row.New(9).Add(
			col.New(2).Add(text.New(a.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(a.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.WarehouseName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d/%d", a.CurrentStock, a.Threshold),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.DaysUntilStockout),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: daysColor},
			)),
			col.New(3).Add(supplierTexts(a.Supplier)...),
		))
	}
	return result
}

func supplierTexts(s *dto.SupplierSummary) []core.Component {
	if s == nil {
		return []core.Component{text.New("Sin proveedor", props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})}
	}
	out := []core.Component{text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})}
	if s.ContactEmail != nil {
		out = append(out, text.New(*s.ContactEmail, props.Text{Size: 6.5, Top: 5, Left: 1, Color: colorGray}))
	}
	return out
}

func footerRow(meta alerts.ReportMeta) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Los días hasta el quiebre asumen una venta constante de %d unidades diarias; "+
				"solo se listan productos con ventas en los últimos %d días.", meta.DailySalesRate, meta.WindowDays),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
