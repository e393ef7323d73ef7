package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ProductUC     *usecase.ProductUseCase
	MenuUC        *usecase.MenuUseCase
	Ping          PingFunc
	AppName       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.AppName, deps.Ping))

	api := app.Group("/api")

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)

	// Categories
	categories := api.Group("/category")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/search", categoryHandler.Search)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Get("/:id/subcategories", subCategoryHandler.ListByCategory)
	categories.Get("/:id/products", productHandler.ListByCategory)

	// Sub-categories
	subCategories := api.Group("/subcategory")
	subCategories.Get("/", subCategoryHandler.List)
	subCategories.Post("/", subCategoryHandler.Create)
	subCategories.Get("/search", subCategoryHandler.Search)
	subCategories.Get("/:id", subCategoryHandler.GetByID)
	subCategories.Patch("/:id", subCategoryHandler.Update)
	subCategories.Get("/:id/products", productHandler.ListBySubCategory)

	// Products
	products := api.Group("/product")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)

	// Menu
	if deps.MenuUC != nil {
		menuHandler := NewMenuHandler(deps.MenuUC)
		api.Get("/menu/pdf", menuHandler.ExportPDF)
	}
}
