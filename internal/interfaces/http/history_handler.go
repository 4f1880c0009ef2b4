package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/application/history"
)

// HistoryHandler maneja el historial paginado del ledger, las estadísticas y
// la exportación PDF (protegido, solo lectura).
type HistoryHandler struct {
	queries *history.QueryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(queries *history.QueryUseCase) *HistoryHandler {
	return &HistoryHandler{queries: queries}
}

// QueryHistory godoc
// @Summary      Historial de movimientos de stock
// @Description  Página del ledger en orden cronológico inverso (el movimiento más reciente primero), con filtros opcionales por tipo y producto.
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        page        query  int     false  "Página (1..n)"
// @Param        page_size   query  int     false  "Tamaño de página (máx 100)"
// @Param        type        query  string  false  "Filtrar por tipo de movimiento"
// @Param        product_id  query  string  false  "Filtrar por producto (UUID)"
// @Success      200  {object}  dto.HistoryPage
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/history [get]
func (h *HistoryHandler) QueryHistory(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page, err := h.queries.QueryHistory(c.Context(), q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(page)
}

// GetStatistics godoc
// @Summary      Estadísticas de movimientos
// @Description  Agregados por tipo de movimiento: número de movimientos y suma neta de cantidades (ventas netas negativas, ajustes con signo).
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        since  query  string  false  "Inicio de la ventana (RFC 3339). Vacío = todo el historial."
// @Success      200  {object}  dto.MovementStats
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/history/statistics [get]
func (h *HistoryHandler) GetStatistics(c *fiber.Ctx) error {
	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "since debe ser RFC 3339"})
		}
		since = &t
	}
	stats, err := h.queries.GetStatistics(c.Context(), since)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(stats)
}

// ExportHistory godoc
// @Summary      Exportar historial a PDF
// @Tags         history
// @Security     Bearer
// @Produce      application/pdf
// @Param        page        query  int     false  "Página (1..n)"
// @Param        page_size   query  int     false  "Tamaño de página (máx 100)"
// @Param        type        query  string  false  "Filtrar por tipo de movimiento"
// @Param        product_id  query  string  false  "Filtrar por producto (UUID)"
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/history/export [get]
func (h *HistoryHandler) ExportHistory(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	pdfBytes, err := h.queries.ExportHistoryPDF(c.Context(), q)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos-stock.pdf"`)
	return c.Send(pdfBytes)
}
