package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// MenuHandler expone la carta imprimible.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// ExportPDF godoc
// @Summary      Carta en PDF
// @Description  Productos agrupados por categoría y subcategoría, con impuesto y total.
// @Tags         menu
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/menu/pdf [get]
func (h *MenuHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdfBytes)
}
