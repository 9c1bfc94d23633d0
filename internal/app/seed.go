package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supplyline/supplyline/internal/delivery"
	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/masterdata/products"
	"github.com/supplyline/supplyline/internal/masterdata/suppliers"
	"github.com/supplyline/supplyline/internal/masterdata/warehouses"
	"github.com/supplyline/supplyline/internal/procurement"
	"github.com/supplyline/supplyline/internal/sales"
	"github.com/supplyline/supplyline/internal/shared"
)

// SeedResult counts the records inserted by Seed.
type SeedResult struct {
	Suppliers  int
	Warehouses int
	Products   int
	Documents  int
}

// Seed inserts the demo catalogue: three suppliers, warehouses and products
// plus one purchase order, transfer, shipment, customer order and delivery
// linked to them. Dates are relative to now.
func Seed(ctx context.Context, svc *Services, now time.Time) (SeedResult, error) {
	var res SeedResult
	day := func(offset int) string { return now.AddDate(0, 0, offset).Format(time.RFC3339) }

	supplierIDs := map[string]string{}
	for _, in := range []suppliers.CreateInput{
		{Name: "Acme Corp", ContactInfo: "acme@example.com", LeadTimeDays: qty(5), ReliabilityScore: ptr(0.95)},
		{Name: "Global Widgets", ContactInfo: "widgets@example.com", LeadTimeDays: qty(7), ReliabilityScore: ptr(0.9)},
		{Name: "SupplyCo", ContactInfo: "supplyco@example.com", LeadTimeDays: qty(3), ReliabilityScore: ptr(0.98)},
	} {
		s, err := svc.Suppliers.Create(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed supplier %s: %w", in.Name, err)
		}
		supplierIDs[s.Name] = s.ID
		res.Suppliers++
	}

	warehouseIDs := map[string]string{}
	for _, in := range []warehouses.CreateInput{
		{Name: "Central Warehouse", Address: "123 Main St"},
		{Name: "East Warehouse", Address: "456 East Ave"},
		{Name: "West Warehouse", Address: "789 West Blvd"},
	} {
		w, err := svc.Warehouses.Create(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed warehouse %s: %w", in.Name, err)
		}
		warehouseIDs[w.Name] = w.ID
		res.Warehouses++
	}

	productIDs := map[string]string{}
	for _, in := range []products.CreateInput{
		{Name: "Widget A", SKU: "WIDGET-A", Category: "Widgets", Stock: qty(120), MinStock: qty(30), Price: price("10.5"), Supplier: supplierIDs["Acme Corp"]},
		{Name: "Widget B", SKU: "WIDGET-B", Category: "Widgets", Stock: qty(80), MinStock: qty(20), Price: price("12.0"), Supplier: supplierIDs["Global Widgets"]},
		{Name: "Gadget X", SKU: "GADGET-X", Category: "Gadgets", Stock: qty(200), MinStock: qty(50), Price: price("8.75"), Supplier: supplierIDs["SupplyCo"]},
	} {
		p, err := svc.Products.Create(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed product %s: %w", in.Name, err)
		}
		productIDs[p.Name] = p.ID
		res.Products++
	}

	po, err := svc.PurchaseOrders.Create(ctx, procurement.CreateOrderInput{
		SupplierID:       supplierIDs["Acme Corp"],
		Items:            []procurement.Item{{ProductID: productIDs["Widget A"], Quantity: 50, Price: 10.5}},
		Status:           "pending",
		OrderDate:        day(0),
		ExpectedDelivery: day(5),
	})
	if err != nil {
		return res, fmt.Errorf("seed purchase order: %w", err)
	}
	if _, err := svc.Transfers.Create(ctx, inventory.CreateTransferInput{
		FromWarehouse: warehouseIDs["Central Warehouse"],
		ToWarehouse:   warehouseIDs["East Warehouse"],
		Items:         []inventory.TransferItem{{ProductID: productIDs["Widget B"], Quantity: 10}},
		Status:        "in transit",
		TransferDate:  day(0),
	}); err != nil {
		return res, fmt.Errorf("seed transfer: %w", err)
	}
	if _, err := svc.Shipments.Create(ctx, procurement.CreateShipmentInput{
		PurchaseOrderID:  po.ID,
		WarehouseID:      warehouseIDs["Central Warehouse"],
		Status:           "shipped",
		ExpectedDelivery: day(3),
	}); err != nil {
		return res, fmt.Errorf("seed shipment: %w", err)
	}
	order, err := svc.Orders.Create(ctx, sales.CreateInput{
		CustomerInfo:    &sales.Customer{Name: "John Doe", Email: "john@example.com", Phone: "1234567890"},
		Items:           []sales.Item{{ProductID: productIDs["Gadget X"], Quantity: 2, Price: 8.75}},
		Status:          "processing",
		DeliveryAddress: "789 Customer Rd",
		PlacedDate:      day(0),
	})
	if err != nil {
		return res, fmt.Errorf("seed order: %w", err)
	}
	if _, err := svc.Deliveries.Create(ctx, delivery.CreateInput{
		OrderID:      order.ID,
		Status:       "pending",
		DeliveryDate: day(2),
	}); err != nil {
		return res, fmt.Errorf("seed delivery: %w", err)
	}
	res.Documents = 5
	return res, nil
}

func qty(n int64) *shared.Quantity {
	q := shared.Quantity(n)
	return &q
}

func ptr[T any](v T) *T { return &v }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
