package reporting

import (
	"context"
	"fmt"

	"github.com/ridwanfathin/shop-admin-service/internal/domain"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
)

// TopProducts ranks products (or categories) by quantity sold in success invoices.
// Ties keep the order in which the entries were first seen in line item id order.
func (e *Engine) TopProducts(ctx context.Context, q RankingQuery) ([]domain.RankingEntry, error) {
	return runReport(ctx, e, "top_products", q.params(), func(ctx context.Context) ([]domain.RankingEntry, error) {
		groupBy := q.GroupBy
		switch groupBy {
		case "":
			groupBy = domain.RankByProduct
		case domain.RankByProduct, domain.RankByCategory:
		default:
			return nil, fmt.Errorf("%w: unknown group_by %q", domain.ErrInvalidRange, q.GroupBy)
		}

		filter := repository.SalesLineFilter{Statuses: successOnly}
		window, ok, err := resolveRange(q.Start, q.End)
		if err != nil {
			return nil, err
		}
		if ok {
			filter.From, filter.To = e.window(window)
		}
		return rank(ctx, e.store, filter, groupBy, e.clampLimit(q.Limit))
	})
}

// clampLimit applies the default to non-positive limits and caps the rest.
func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	if limit > e.maxLimit {
		return e.maxLimit
	}
	return limit
}

func rank(ctx context.Context, store repository.TransactionStore, filter repository.SalesLineFilter, groupBy domain.RankingGroup, limit int) ([]domain.RankingEntry, error) {
	groups := NewGrouper[int64, domain.RankingEntry]()
	err := store.ScanSalesLines(ctx, filter, func(line domain.SalesLine) error {
		id, name := line.ProductID, line.ProductName
		if groupBy == domain.RankByCategory {
			if line.CategoryID == 0 {
				return nil
			}
			id, name = line.CategoryID, line.CategoryName
		}
		groups.Add(id, func(entry *domain.RankingEntry) {
			if groupBy == domain.RankByCategory {
				entry.CategoryID = id
			} else {
				entry.ProductID = id
			}
			entry.Name = name
			entry.QtySold += line.Qty
			entry.Revenue = entry.Revenue.Add(line.Subtotal())
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sorted := groups.Sorted(func(a, b Group[int64, domain.RankingEntry]) bool {
		return a.Value.QtySold > b.Value.QtySold
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	entries := make([]domain.RankingEntry, 0, len(sorted))
	for _, g := range sorted {
		entries = append(entries, g.Value)
	}
	return entries, nil
}
