package stock_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de stock.
//
// memStore guarda productos, ledger y configuración detrás de un mutex: el
// fakeTxRunner serializa las "transacciones" igual que lo haría la BD con
// SELECT FOR UPDATE, y ante un error de fn restaura el snapshot previo para
// simular el rollback (cero escrituras en caminos de fallo).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	products map[string]entity.Product
	ledger   []entity.StockLedgerEntry
	nextID   int64
	settings *entity.NotificationSettings
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]entity.Product), nextID: 1}
}

func (s *memStore) addProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *memStore) getProduct(id string) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

func (s *memStore) ledgerEntries() []entity.StockLedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockLedgerEntry, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// ── repositorio de productos ──────────────────────────────────────────────────

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.GetForUpdate(id)
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) UpdateStock(id string, quantity int, status string) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CountInStock = quantity
	p.StockStatus = status
	p.UpdatedAt = time.Now()
	r.store.products[id] = p
	return nil
}

func (r *fakeProductRepo) ListByStockStatus(statuses []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		for _, s := range statuses {
			if p.StockStatus == s {
				cp := p
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

// ── repositorio del ledger ────────────────────────────────────────────────────

type fakeLedgerRepo struct{ store *memStore }

func (r *fakeLedgerRepo) Create(entry *entity.StockLedgerEntry) error {
	entry.ID = r.store.nextID
	r.store.nextID++
	r.store.ledger = append(r.store.ledger, *entry)
	return nil
}

func (r *fakeLedgerRepo) matches(e entity.StockLedgerEntry, f repository.LedgerFilter) bool {
	if f.MovementType != "" && e.MovementType != f.MovementType {
		return false
	}
	if f.ProductID != "" && e.ProductID != f.ProductID {
		return false
	}
	return true
}

func (r *fakeLedgerRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error) {
	// orden inverso de inserción = created_at DESC, id DESC
	var matched []*entity.StockLedgerEntry
	for i := len(r.store.ledger) - 1; i >= 0; i-- {
		if r.matches(r.store.ledger[i], filter) {
			cp := r.store.ledger[i]
			matched = append(matched, &cp)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeLedgerRepo) Count(filter repository.LedgerFilter) (int, error) {
	n := 0
	for _, e := range r.store.ledger {
		if r.matches(e, filter) {
			n++
		}
	}
	return n, nil
}

func (r *fakeLedgerRepo) StatsByType(since *time.Time) ([]repository.MovementTypeStat, error) {
	byType := make(map[string]*repository.MovementTypeStat)
	var order []string
	for _, e := range r.store.ledger {
		if since != nil && e.CreatedAt.Before(*since) {
			continue
		}
		s, ok := byType[e.MovementType]
		if !ok {
			s = &repository.MovementTypeStat{Type: e.MovementType}
			byType[e.MovementType] = s
			order = append(order, e.MovementType)
		}
		s.Count++
		s.TotalQuantity += int64(e.QuantityChange)
	}
	out := make([]repository.MovementTypeStat, 0, len(order))
	for _, t := range order {
		out = append(out, *byType[t])
	}
	return out, nil
}

// ── repositorio de configuración ──────────────────────────────────────────────

type fakeSettingsRepo struct{ store *memStore }

func (r *fakeSettingsRepo) Get() (*entity.NotificationSettings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.settings == nil {
		return nil, nil
	}
	cp := *r.store.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(settings *entity.NotificationSettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *settings
	r.store.settings = &cp
	return nil
}

// ── tx runner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *memStore
	// conflictsBefore fuerza N fallos de serialización antes de dejar pasar
	// la transacción (para ejercitar el reintento acotado del mutador).
	conflictsBefore int
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	ledgerRepo repository.StockLedgerRepository,
) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if t.conflictsBefore > 0 {
		t.conflictsBefore--
		return fmt.Errorf("simulado: %w", domain.ErrConcurrencyConflict)
	}

	prodSnap := make(map[string]entity.Product, len(t.store.products))
	for k, v := range t.store.products {
		prodSnap[k] = v
	}
	ledgerLen := len(t.store.ledger)
	nextID := t.store.nextID

	if err := fn(&fakeProductRepo{t.store}, &fakeLedgerRepo{t.store}); err != nil {
		t.store.products = prodSnap
		t.store.ledger = t.store.ledger[:ledgerLen]
		t.store.nextID = nextID
		return err
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func intPtr(v int) *int { return &v }

func testProduct(id string, quantity, minLevel int) entity.Product {
	return entity.Product{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          "Producto " + id,
		CountInStock:  quantity,
		MinStockLevel: minLevel,
		StockStatus:   entity.StockStatusInStock,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
