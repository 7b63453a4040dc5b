package impl

import (
	"context"
	"log/slog"
	"time"

	"storehub/internal/binding"
	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/sale"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"
)

type saleService struct {
	bindings  *binding.Manager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewSaleService creates a new sale service instance
func NewSaleService(bindings *binding.Manager, publisher service.EventPublisher, logger *slog.Logger) usecase.SaleUsecase {
	return &saleService{
		bindings:  bindings,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitSale processes a cart against the store's ledger and catalog. The
// updated ledger and catalog land in one merge write so a crash between the
// two can never leave revenue recorded without the matching stock deduction.
func (s *saleService) SubmitSale(ctx context.Context, storeID string, input *usecase.SaleInput) (*usecase.SaleReceipt, error) {
	if storeID == "" {
		return nil, domainerrors.ErrStoreIDRequired
	}

	b := s.bindings.Store(storeID)

	products, err := b.Products.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := b.Sales.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result, err := sale.Process(input.Cart, input.PaymentMethod, products, ledger, s.now())
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		entity.SliceSalesData: result.Ledger,
		entity.SliceProducts:  result.Products,
	}
	if err := s.bindings.Channel().MergeWrite(ctx, storeID, fields); err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		slog.String("store_id", storeID),
		slog.Float64("total", result.Summary.Total),
		slog.Int("lines", len(result.Summary.Items)),
	)

	s.publish(ctx, storeID, result)

	return &usecase.SaleReceipt{
		Summary:  result.Summary,
		LowStock: result.LowStock,
	}, nil
}

// publish emits the completion and low-stock events. Publishing is a side
// channel: a failure is logged and never fails the already-persisted sale.
func (s *saleService) publish(ctx context.Context, storeID string, result *sale.Result) {
	summary := result.Summary
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	completed := &service.StoreEvent{
		RequestID: requestID,
		Kind:      service.EventSaleCompleted,
		StoreID:   storeID,
		At:        summary.Timestamp,
		Sale:      &summary,
	}
	if err := s.publisher.PublishStoreEvent(ctx, completed); err != nil {
		s.logger.Warn("failed to publish sale event",
			slog.String("store_id", storeID),
			slog.Any("error", err),
		)
	}

	if len(result.LowStock) == 0 {
		return
	}
	low := &service.StoreEvent{
		RequestID: requestID,
		Kind:      service.EventStockLow,
		StoreID:   storeID,
		At:        summary.Timestamp,
		LowStock:  result.LowStock,
	}
	if err := s.publisher.PublishStoreEvent(ctx, low); err != nil {
		s.logger.Warn("failed to publish low stock event",
			slog.String("store_id", storeID),
			slog.Any("error", err),
		)
	}
}
