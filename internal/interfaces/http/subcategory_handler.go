package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// SubCategoryHandler maneja las peticiones HTTP para SubCategory.
type SubCategoryHandler struct {
	uc *usecase.SubCategoryUseCase
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *usecase.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría
// @Description  Si no se envían taxApplicability o tax se heredan de la categoría.
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubCategoryRequest  true  "Datos de la subcategoría"
// @Success      201   {object}  dto.SubCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategory [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría (parcial)
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la subcategoría"
// @Param        body  body  dto.SubCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategory/{id} [patch]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.SubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "Sub-category not found")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Produce      json
// @Param        id   path  int  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategory/{id} [get]
func (h *SubCategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "Sub-category not found")
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar subcategoría por id o nombre exacto
// @Tags         subcategories
// @Produce      json
// @Param        value  query  string  true  "ID o nombre"
// @Success      200    {object}  dto.SubCategoryResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/subcategory/search [get]
func (h *SubCategoryHandler) Search(c *fiber.Ctx) error {
	q, err := parseSearch(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Search(c.UserContext(), q.Value)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "Sub-category not found")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Success      200  {object}  dto.SubCategoryListResponse
// @Router       /api/subcategory [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Subcategorías de una categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.SubCategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/category/{id}/subcategories [get]
func (h *SubCategoryHandler) ListByCategory(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.ListByCategory(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "Category not found")
	}
	return c.JSON(out)
}
