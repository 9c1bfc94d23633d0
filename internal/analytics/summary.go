package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/supplyline/supplyline/internal/procurement"
	"github.com/supplyline/supplyline/internal/sales"
	"github.com/supplyline/supplyline/internal/store"
)

// SummaryCounts counts every collection concurrently. Open counts exclude the
// collection's terminal statuses.
func SummaryCounts(ctx context.Context, s store.Store) (Summary, error) {
	var out Summary
	supplyOpen := store.StatusNotIn(procurement.TerminalStatuses...)
	demandOpen := store.StatusNotIn(sales.TerminalStatuses...)
	counts := []struct {
		collection string
		filter     store.Filter
		dest       *int64
	}{
		{store.Suppliers, store.Filter{}, &out.TotalSuppliers},
		{store.Warehouses, store.Filter{}, &out.TotalWarehouses},
		{store.Products, store.Filter{}, &out.TotalProducts},
		{store.PurchaseOrders, supplyOpen, &out.OpenPurchaseOrders},
		{store.Orders, demandOpen, &out.OpenCustomerOrders},
		{store.Deliveries, demandOpen, &out.OpenDeliveries},
		{store.Shipments, supplyOpen, &out.OpenShipments},
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			n, err := s.Collection(c.collection).Count(gctx, c.filter)
			if err != nil {
				return err
			}
			*c.dest = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return out, nil
}
