// Package pdf genera la carta imprimible del catálogo con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la carta           │  Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA (impuesto si aplica)                             │
//	│    Producto | Descripción | Precio | Dto. | Total           │
//	│    SUBCATEGORÍA                                             │
//	│      Producto | Descripción | Precio | Dto. | Total         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de productos                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MenuPDFGenerator implementa usecase.MenuPDFGenerator usando Maroto v2.
type MenuPDFGenerator struct{}

var _ usecase.MenuPDFGenerator = (*MenuPDFGenerator)(nil)

// NewMenuPDFGenerator construye el generador.
func NewMenuPDFGenerator() *MenuPDFGenerator { return &MenuPDFGenerator{} }

// GenerateMenuPDF genera el PDF y devuelve sus bytes.
func (g *MenuPDFGenerator) GenerateMenuPDF(_ context.Context, menu *usecase.Menu) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(menu.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(menu))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := 0
	for _, section := range menu.Sections {
		m.AddRows(sectionRows(section)...)
		total += section.ItemCount()
	}
	if len(menu.Sections) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("El catálogo está vacío.", props.Text{Size: 10, Align: align.Center, Top: 4, Color: colorGray}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d productos", total), props.Text{Size: 7, Align: align.Right, Top: 1, Color: colorGray}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la carta (izq) y fecha (der).
func headerRow(menu *usecase.Menu) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(menu.Title), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitida: "+menu.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// sectionRows: cabecera de la categoría, sus productos sueltos y luego cada subcategoría.
func sectionRows(s usecase.MenuSection) []core.Row {
	c := s.Category
	rows := []core.Row{
		row.New(4),
		row.New(9).Add(
			col.New(8).Add(text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			})),
			col.New(4).Add(text.New(taxLabel(c.TaxApplicability, c.Tax, c.TaxType), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			})),
		),
	}
	if c.Description != nil {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(*c.Description, props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray}),
		)))
	}
	if s.ItemCount() > 0 {
		rows = append(rows, tableHeaderRow())
	}
	rows = append(rows, productRows(s.Products, 0)...)

	for _, g := range s.Groups {
		rows = append(rows, row.New(7).Add(
			col.New(8).Add(text.New(g.SubCategory.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Left: 3,
			})),
			col.New(4).Add(text.New(taxLabel(g.SubCategory.TaxApplicability, g.SubCategory.Tax, nil), props.Text{
				Size: 7, Align: align.Right, Top: 3, Color: colorGray,
			})),
		))
		rows = append(rows, productRows(g.Products, 6)...)
	}
	return rows
}

// tableHeaderRow: cabecera de columnas de producto.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(5).Add(
		h("Producto", 4, align.Left),
		h("Descripción", 4, align.Left),
		h("Precio", 1, align.Right),
		h("Dto.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// productRows: una fila por producto. indent desplaza el nombre bajo una subcategoría.
func productRows(products []*entity.Product, indent float64) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		name := p.Name
		if p.TaxApplicability && p.Tax != nil {
			name += " *"
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(name, props.Text{Size: 9, Top: 1, Left: 1 + indent})),
			col.New(4).Add(text.New(nonEmpty(p.Description, ""), props.Text{Size: 7, Top: 1.5, Color: colorGray})),
			col.New(1).Add(text.New(formatMoney(p.BaseAmount), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(formatDiscount(p.Discount), props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New("$"+formatMoney(p.TotalAmount), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// taxLabel: "IVA 19%" / "19%" o vacío si no aplica.
func taxLabel(applicable bool, tax *decimal.Decimal, taxType *string) string {
	if !applicable || tax == nil {
		return ""
	}
	label := tax.String() + "%"
	if taxType != nil {
		label = *taxType + " " + label
	}
	return "Impuesto: " + label
}

func nonEmpty(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func formatDiscount(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return "-" + formatMoney(d)
}

// formatMoney inserta puntos de miles y usa coma decimal solo si hay centavos.
// Ej: 25000 → "25.000", 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	s := groupThousands(whole)
	if frac != "00" {
		s += "," + frac
	}
	if d.IsNegative() {
		s = "-" + s
	}
	return s
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
