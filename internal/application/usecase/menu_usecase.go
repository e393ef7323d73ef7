package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// MenuUseCase arma la carta del catálogo y la exporta a PDF.
type MenuUseCase struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	products      repository.ProductRepository
	generator     MenuPDFGenerator
	title         string
}

// NewMenuUseCase construye el caso de uso. title se imprime en la cabecera de la carta.
func NewMenuUseCase(
	categories repository.CategoryRepository,
	subCategories repository.SubCategoryRepository,
	products repository.ProductRepository,
	generator MenuPDFGenerator,
	title string,
) *MenuUseCase {
	return &MenuUseCase{
		categories:    categories,
		subCategories: subCategories,
		products:      products,
		generator:     generator,
		title:         title,
	}
}

// Build agrupa productos por categoría y subcategoría, en el orden de los listados (por id).
func (uc *MenuUseCase) Build(ctx context.Context) (*Menu, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu: listar categorías: %w", err)
	}
	subs, err := uc.subCategories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu: listar subcategorías: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu: listar productos: %w", err)
	}

	subsByCategory := make(map[int64][]*entity.SubCategory)
	for _, s := range subs {
		subsByCategory[s.CategoryID] = append(subsByCategory[s.CategoryID], s)
	}
	bySub := make(map[int64][]*entity.Product)
	loose := make(map[int64][]*entity.Product)
	for _, p := range products {
		if p.SubCategoryID != nil {
			bySub[*p.SubCategoryID] = append(bySub[*p.SubCategoryID], p)
			continue
		}
		loose[p.CategoryID] = append(loose[p.CategoryID], p)
	}

	menu := &Menu{Title: uc.title, GeneratedAt: time.Now().UTC()}
	for _, c := range categories {
		section := MenuSection{Category: c, Products: loose[c.ID]}
		for _, s := range subsByCategory[c.ID] {
			section.Groups = append(section.Groups, MenuGroup{SubCategory: s, Products: bySub[s.ID]})
		}
		menu.Sections = append(menu.Sections, section)
	}
	return menu, nil
}

// ExportPDF genera la carta en PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *MenuUseCase) ExportPDF(ctx context.Context) ([]byte, string, error) {
	menu, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateMenuPDF(ctx, menu)
	if err != nil {
		return nil, "", fmt.Errorf("menu: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("menu_%s.pdf", menu.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
