package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// MenuPDFGenerator genera la carta imprimible a partir del catálogo agrupado.
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, menu *Menu) ([]byte, error)
}

// Menu catálogo completo agrupado para exportar.
type Menu struct {
	Title       string
	GeneratedAt time.Time
	Sections    []MenuSection
}

// MenuSection una categoría con sus productos sueltos y sus subcategorías.
type MenuSection struct {
	Category *entity.Category
	Products []*entity.Product // productos sin subcategoría
	Groups   []MenuGroup
}

// MenuGroup una subcategoría con sus productos.
type MenuGroup struct {
	SubCategory *entity.SubCategory
	Products    []*entity.Product
}

// ItemCount total de productos de la sección.
func (s MenuSection) ItemCount() int {
	n := len(s.Products)
	for _, g := range s.Groups {
		n += len(g.Products)
	}
	return n
}
