package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// ProductHandler maneja el alta de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Description  Inserta el producto y su fila de inventario en una sola transacción.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.CreateProductResponse
// @Failure      409   {object}  dto.CreateProductResponse
// @Failure      500   {object}  dto.CreateProductResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateProductResponse{Message: "Invalid request body"})
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.CreateProductResponse{Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.CreateProductResponse{Message: "A product with this SKU already exists"})
		}
		h.log.Error().Err(err).
			Str("sku", in.SKU).
			Str("request_id", requestID(c)).
			Msg("crear producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.CreateProductResponse{Message: internalErrorMessage})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
