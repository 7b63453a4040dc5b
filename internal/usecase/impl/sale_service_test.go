package impl

import (
	"context"
	"testing"
	"time"

	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() time.Time {
	return time.Date(2025, 7, 14, 12, 30, 0, 0, time.UTC)
}

func newTestSaleService(t *testing.T, channel *memChannel) (usecase.SaleUsecase, *capturePublisher) {
	t.Helper()
	publisher := &capturePublisher{}
	svc := NewSaleService(testManager(t, channel), publisher, testLogger()).(*saleService)
	svc.now = testClock

	return svc, publisher
}

func TestSaleService_SubmitSale_SingleWrite(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{
		entity.SliceProducts: []entity.Product{
			{ID: "p1", Name: "Americano", Price: 4500, Cost: 800, Quantity: 10, MinStock: 3},
		},
		entity.SliceSalesData: []entity.LedgerEntry{},
	})
	svc, publisher := newTestSaleService(t, channel)

	receipt, err := svc.SubmitSale(context.Background(), "store-1", &usecase.SaleInput{
		Cart:          []entity.CartItem{{ID: "p1", Name: "Americano", Price: 4500, Cost: 800, Qty: 2}},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.InDelta(t, 9000, receipt.Summary.Total, 1e-9)
	assert.InDelta(t, 1600, receipt.Summary.Cost, 1e-9)
	assert.InDelta(t, 7400, receipt.Summary.Profit, 1e-9)
	assert.Empty(t, receipt.LowStock)

	// Ledger and catalog land in one write.
	require.Equal(t, 1, channel.writeCount())
	write := channel.lastWrite()
	require.Contains(t, write, entity.SliceSalesData)
	require.Contains(t, write, entity.SliceProducts)

	ledger := write[entity.SliceSalesData].([]entity.LedgerEntry)
	require.Len(t, ledger, 1)
	assert.Equal(t, "2025-07-14", ledger[0].Date)
	assert.InDelta(t, 9000, ledger[0].Revenue, 1e-9)

	products := write[entity.SliceProducts].([]entity.Product)
	require.Len(t, products, 1)
	assert.InDelta(t, 8, products[0].Quantity, 1e-9)
	assert.InDelta(t, 2, products[0].Sales, 1e-9)

	assert.Equal(t, []string{service.EventSaleCompleted}, publisher.kinds())
}

func TestSaleService_SubmitSale_LowStockEvent(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{
		entity.SliceProducts: []entity.Product{
			{ID: "p1", Name: "Beans", Price: 1000, Cost: 300, Quantity: 4, MinStock: 3},
		},
		entity.SliceSalesData: []entity.LedgerEntry{},
	})
	svc, publisher := newTestSaleService(t, channel)

	receipt, err := svc.SubmitSale(context.Background(), "store-1", &usecase.SaleInput{
		Cart:          []entity.CartItem{{ID: "p1", Name: "Beans", Price: 1000, Cost: 300, Qty: 2}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	require.Len(t, receipt.LowStock, 1)
	assert.Equal(t, "p1", receipt.LowStock[0].ID)

	assert.Equal(t, []string{service.EventSaleCompleted, service.EventStockLow}, publisher.kinds())
}

func TestSaleService_SubmitSale_EmptyCart(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{
		entity.SliceProducts:  []entity.Product{},
		entity.SliceSalesData: []entity.LedgerEntry{},
	})
	svc, publisher := newTestSaleService(t, channel)

	_, err := svc.SubmitSale(context.Background(), "store-1", &usecase.SaleInput{PaymentMethod: "card"})
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	// Nothing written, nothing published.
	assert.Equal(t, 0, channel.writeCount())
	assert.Empty(t, publisher.kinds())
}

func TestSaleService_SubmitSale_RequiresStoreID(t *testing.T) {
	svc, _ := newTestSaleService(t, newMemChannel())

	_, err := svc.SubmitSale(context.Background(), "", &usecase.SaleInput{
		Cart: []entity.CartItem{{ID: "p1", Qty: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrStoreIDRequired)
}

func TestSaleService_SubmitSale_SecondSaleSameDay(t *testing.T) {
	channel := newMemChannel()
	channel.seed("store-1", service.Document{
		entity.SliceProducts: []entity.Product{
			{ID: "p1", Name: "Americano", Price: 4500, Cost: 800, Quantity: 50, MinStock: 3},
		},
		entity.SliceSalesData: []entity.LedgerEntry{},
	})
	svc, _ := newTestSaleService(t, channel)

	cart := []entity.CartItem{{ID: "p1", Name: "Americano", Price: 4500, Cost: 800, Qty: 1}}
	_, err := svc.SubmitSale(context.Background(), "store-1", &usecase.SaleInput{Cart: cart, PaymentMethod: "card"})
	require.NoError(t, err)
	_, err = svc.SubmitSale(context.Background(), "store-1", &usecase.SaleInput{Cart: cart, PaymentMethod: "card"})
	require.NoError(t, err)

	ledger := channel.lastWrite()[entity.SliceSalesData].([]entity.LedgerEntry)
	require.Len(t, ledger, 1)
	assert.InDelta(t, 9000, ledger[0].Revenue, 1e-9)
	assert.Equal(t, 2, ledger[0].Orders)
}
