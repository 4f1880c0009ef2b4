package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/application/stock"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP de ajustes manuales y consulta de
// stock por producto (protegido).
type StockHandler struct {
	adjustments *stock.AdjustmentUseCase
	productRepo repository.ProductRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(adjustments *stock.AdjustmentUseCase, productRepo repository.ProductRepository) *StockHandler {
	return &StockHandler{adjustments: adjustments, productRepo: productRepo}
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock
// @Description  Corrección de inventario por un administrador: cantidad objetivo absoluta (new_quantity) o cambio directo (delta). Requiere motivo.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, new_quantity o delta, reason"
// @Success      200   {object}  dto.MovementResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/adjustments [post]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.adjustments.AdjustStock(c.Context(), stock.AdjustmentInput{
		ProductID:   in.ProductID,
		NewQuantity: in.NewQuantity,
		Delta:       in.Delta,
		Reason:      in.Reason,
		UserID:      userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MovementResultDTO{
		ProductID:     result.ProductID,
		NewQuantity:   result.NewQuantity,
		NewStatus:     result.NewStatus,
		LedgerEntryID: result.LedgerEntryID,
	})
}

// GetProductStock godoc
// @Summary      Stock actual de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del producto (UUID)"
// @Success      200  {object}  dto.ProductStockDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) GetProductStock(c *fiber.Ctx) error {
	product, err := h.productRepo.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if product == nil {
		return respondDomainError(c, domain.ErrNotFound)
	}
	return c.JSON(dto.ProductStockDTO{
		ProductID:     product.ID,
		SKU:           product.SKU,
		Name:          product.Name,
		Price:         product.Price,
		CountInStock:  product.CountInStock,
		MinStockLevel: product.MinStockLevel,
		MaxStockLevel: product.MaxStockLevel,
		StockStatus:   product.StockStatus,
		Discontinued:  product.Discontinued,
	})
}
