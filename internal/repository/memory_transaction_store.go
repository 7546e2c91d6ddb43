package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
)

// MemoryTransactionStore is an in-memory TransactionStore for tests and demos.
type MemoryTransactionStore struct {
	mu         sync.RWMutex
	customers  map[int64]domain.Customer
	categories map[int64]domain.Category
	products   map[int64]domain.Product
	invoices   map[int64]domain.Invoice
	lines      []domain.LineItem
	nextID     int64
}

// NewMemoryTransactionStore constructs an empty store.
func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{
		customers:  make(map[int64]domain.Customer),
		categories: make(map[int64]domain.Category),
		products:   make(map[int64]domain.Product),
		invoices:   make(map[int64]domain.Invoice),
	}
}

func (s *MemoryTransactionStore) assignID(id int64) int64 {
	if id == 0 {
		s.nextID++
		return s.nextID
	}
	if id > s.nextID {
		s.nextID = id
	}
	return id
}

// AddCustomer stores a customer, assigning an id when it is zero.
func (s *MemoryTransactionStore) AddCustomer(c domain.Customer) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.assignID(c.ID)
	s.customers[c.ID] = c
	return c
}

// AddCategory stores a category, assigning an id when it is zero.
func (s *MemoryTransactionStore) AddCategory(c domain.Category) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.assignID(c.ID)
	s.categories[c.ID] = c
	return c
}

// AddProduct stores a product. Its category does not have to exist.
func (s *MemoryTransactionStore) AddProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.assignID(p.ID)
	s.products[p.ID] = p
	return p
}

// AddInvoice stores an invoice and its line items. Zero ids are assigned.
func (s *MemoryTransactionStore) AddInvoice(inv domain.Invoice, items ...domain.LineItem) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = s.assignID(inv.ID)
	inv.Customer = nil
	s.invoices[inv.ID] = inv
	for _, item := range items {
		item.ID = s.assignID(item.ID)
		item.InvoiceID = inv.ID
		s.lines = append(s.lines, item)
	}
	return inv
}

// clone copies the store under the read lock.
func (s *MemoryTransactionStore) clone() *MemoryTransactionStore {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := NewMemoryTransactionStore()
	c.nextID = s.nextID
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	c.lines = append([]domain.LineItem(nil), s.lines...)
	return c
}

// joinedInvoices returns invoices with their customer attached, ordered by (created_at, id).
func (s *MemoryTransactionStore) joinedInvoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if c, ok := s.customers[inv.CustomerID]; ok {
			c := c
			inv.Customer = &c
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ScanInvoices visits matching invoices ordered by (created_at, id).
func (s *MemoryTransactionStore) ScanInvoices(ctx context.Context, filter InvoiceFilter, fn func(domain.Invoice) error) error {
	for _, inv := range s.joinedInvoices() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !inWindow(inv.CreatedAt, filter.From, filter.To) || !statusAllowed(filter.Statuses, inv.Status) {
			continue
		}
		if filter.CustomerID != nil && inv.CustomerID != *filter.CustomerID {
			continue
		}
		if err := fn(inv); err != nil {
			return err
		}
	}
	return nil
}

// ScanSalesLines visits line items in id order. Lines of missing invoices or products are skipped.
func (s *MemoryTransactionStore) ScanSalesLines(ctx context.Context, filter SalesLineFilter, fn func(domain.SalesLine) error) error {
	s.mu.RLock()
	lines := make([]domain.SalesLine, 0, len(s.lines))
	for _, item := range s.lines {
		inv, ok := s.invoices[item.InvoiceID]
		if !ok {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		line := domain.SalesLine{
			LineItem:         item,
			InvoiceCreatedAt: inv.CreatedAt,
			InvoiceStatus:    inv.Status,
			CustomerID:       inv.CustomerID,
			ProductName:      product.Name,
		}
		if cat, ok := s.categories[product.CategoryID]; ok {
			line.CategoryID = cat.ID
			line.CategoryName = cat.Name
		}
		lines = append(lines, line)
	}
	s.mu.RUnlock()

	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !inWindow(line.InvoiceCreatedAt, filter.From, filter.To) || !statusAllowed(filter.Statuses, line.InvoiceStatus) {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryTransactionStore) ScanCustomers(ctx context.Context, filter CustomerFilter, fn func(domain.Customer) error) error {
	s.mu.RLock()
	customers := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, c)
	}
	s.mu.RUnlock()

	sort.Slice(customers, func(i, j int) bool {
		if !customers[i].CreatedAt.Equal(customers[j].CreatedAt) {
			return customers[i].CreatedAt.Before(customers[j].CreatedAt)
		}
		return customers[i].ID < customers[j].ID
	})
	for _, c := range customers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !inWindow(c.CreatedAt, filter.From, filter.To) {
			continue
		}
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryTransactionStore) RecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := s.joinedInvoices()
	out := []domain.Invoice{}
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// CountEntities counts customers, products and categories.
func (s *MemoryTransactionStore) CountEntities(ctx context.Context) (domain.EntityCounts, error) {
	if err := ctx.Err(); err != nil {
		return domain.EntityCounts{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.EntityCounts{
		Customers:  int64(len(s.customers)),
		Products:   int64(len(s.products)),
		Categories: int64(len(s.categories)),
		Invoices:   int64(len(s.invoices)),
	}, nil
}

func (s *MemoryTransactionStore) CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int64, len(s.categories))
	for _, p := range s.products {
		counts[p.CategoryID]++
	}
	out := make([]domain.CategoryProductCount, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, domain.CategoryProductCount{ID: c.ID, Name: c.Name, ProductCount: counts[c.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Snapshot runs fn against a frozen copy of the store.
func (s *MemoryTransactionStore) Snapshot(ctx context.Context, fn func(TransactionStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.clone())
}

var _ TransactionStore = (*MemoryTransactionStore)(nil)
