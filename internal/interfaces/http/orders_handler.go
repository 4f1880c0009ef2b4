package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/application/stock"
	"github.com/tu-usuario/tienda-stock/internal/domain"
)

// OrdersHandler expone el hook de fulfillment al flujo de órdenes
// (colocación y cancelación). El caller garantiza invocarlo exactamente una
// vez por transición de estado de la orden.
type OrdersHandler struct {
	fulfillment *stock.FulfillmentUseCase
}

// NewOrdersHandler construye el handler.
func NewOrdersHandler(fulfillment *stock.FulfillmentUseCase) *OrdersHandler {
	return &OrdersHandler{fulfillment: fulfillment}
}

// ApplyOrderStock godoc
// @Summary      Aplicar movimientos de stock de una orden
// @Description  Descuenta (decrement) o repone (restore) el stock de cada línea. Las líneas son independientes: la respuesta separa succeeded/failed y el flujo de órdenes decide ante fallos parciales. Siempre responde 200 con el detalle por línea.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la orden"
// @Param        body  body  dto.OrderStockRequest  true  "direction y líneas (product_id + quantity)"
// @Success      200   {object}  dto.OrderStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/stock [post]
func (h *OrdersHandler) ApplyOrderStock(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var in dto.OrderStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	lines := make([]stock.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, stock.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	result, err := h.fulfillment.ApplyOrderLines(c.Context(), orderID, lines, in.Direction)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toOrderStockResponse(result))
}

// toOrderStockResponse traduce el resultado del caso de uso al DTO HTTP,
// conservando el detalle de cada línea fallida (nunca se descartan).
func toOrderStockResponse(result *stock.OrderStockResult) dto.OrderStockResponse {
	out := dto.OrderStockResponse{
		OrderID:   result.OrderID,
		Direction: result.Direction,
		Succeeded: make([]dto.OrderLineResultDTO, 0, len(result.Succeeded)),
		Failed:    make([]dto.OrderLineResultDTO, 0, len(result.Failed)),
	}
	for _, line := range result.Succeeded {
		out.Succeeded = append(out.Succeeded, dto.OrderLineResultDTO{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			NewQuantity: line.NewQuantity,
			NewStatus:   line.NewStatus,
		})
	}
	for _, line := range result.Failed {
		out.Failed = append(out.Failed, dto.OrderLineResultDTO{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Error:     errorCode(line.Err),
			Available: line.Available,
		})
	}
	return out
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}
