package history

import (
	"context"
	"time"

	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

// ReportGenerator puerto para el render del reporte PDF de movimientos.
type ReportGenerator interface {
	GenerateMovementReport(ctx context.Context, entries []dto.LedgerEntryDTO, generatedAt time.Time) ([]byte, error)
}

// QueryUseCase acceso de solo lectura al ledger de stock: historial paginado,
// estadísticas por tipo y exportación PDF. Nunca muta entradas.
type QueryUseCase struct {
	ledgerRepo repository.StockLedgerRepository
	reports    ReportGenerator
}

// NewQueryUseCase construye el caso de uso. reports puede ser nil si la
// exportación PDF no está habilitada.
func NewQueryUseCase(ledgerRepo repository.StockLedgerRepository, reports ReportGenerator) *QueryUseCase {
	return &QueryUseCase{ledgerRepo: ledgerRepo, reports: reports}
}

// QueryHistory devuelve una página del historial en orden cronológico inverso
// estricto (created_at DESC, id DESC): el movimiento más reciente siempre
// aparece primero.
func (uc *QueryUseCase) QueryHistory(ctx context.Context, q dto.HistoryQuery) (*dto.HistoryPage, error) {
	q.DefaultPage()
	filter := repository.LedgerFilter{
		MovementType: q.MovementType,
		ProductID:    q.ProductID,
	}

	total, err := uc.ledgerRepo.Count(filter)
	if err != nil {
		return nil, domain.WrapReadFailure(err)
	}
	offset := (q.Page - 1) * q.PageSize
	entries, err := uc.ledgerRepo.List(filter, q.PageSize, offset)
	if err != nil {
		return nil, domain.WrapReadFailure(err)
	}

	page := &dto.HistoryPage{
		Entries:    make([]dto.LedgerEntryDTO, 0, len(entries)),
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: (total + q.PageSize - 1) / q.PageSize,
	}
	for _, e := range entries {
		page.Entries = append(page.Entries, toLedgerEntryDTO(e))
	}
	return page, nil
}

// GetStatistics agrega el ledger por tipo de movimiento: número de movimientos
// y suma neta de cantidades con signo. since nil = todo el historial.
func (uc *QueryUseCase) GetStatistics(ctx context.Context, since *time.Time) (*dto.MovementStats, error) {
	stats, err := uc.ledgerRepo.StatsByType(since)
	if err != nil {
		return nil, domain.WrapReadFailure(err)
	}
	out := &dto.MovementStats{ByType: make([]dto.MovementTypeStatDTO, 0, len(stats))}
	for _, s := range stats {
		out.TotalMovements += s.Count
		out.ByType = append(out.ByType, dto.MovementTypeStatDTO{
			Type:          s.Type,
			Label:         entity.MovementTypeLabel(s.Type),
			Count:         s.Count,
			TotalQuantity: s.TotalQuantity,
		})
	}
	return out, nil
}

// ExportHistoryPDF genera el reporte PDF de la página de historial solicitada.
func (uc *QueryUseCase) ExportHistoryPDF(ctx context.Context, q dto.HistoryQuery) ([]byte, error) {
	if uc.reports == nil {
		return nil, domain.ErrInvalidInput
	}
	page, err := uc.QueryHistory(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateMovementReport(ctx, page.Entries, time.Now())
}

func toLedgerEntryDTO(e *entity.StockLedgerEntry) dto.LedgerEntryDTO {
	return dto.LedgerEntryDTO{
		ID:             e.ID,
		ProductID:      e.ProductID,
		ProductName:    e.ProductName,
		MovementType:   e.MovementType,
		TypeLabel:      entity.MovementTypeLabel(e.MovementType),
		QuantityBefore: e.QuantityBefore,
		QuantityChange: e.QuantityChange,
		QuantityAfter:  e.QuantityAfter,
		Reason:         e.Reason,
		OrderID:        e.OrderID,
		UserID:         e.UserID,
		CreatedAt:      e.CreatedAt,
	}
}
