package intake

import (
	"context"
	"strings"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

const updatedBySystem = "order-intake"

// Processor turns order-placement events into order rows awaiting a courier.
type Processor struct {
	store   OrderStore
	logger  logx.Logger
	factory *actionFactory
	now     func() time.Time
}

// NewProcessor creates a new intake.Processor.
func NewProcessor(store OrderStore, logger logx.Logger) *Processor {
	p := &Processor{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
	p.factory = newActionFactory(p.onPlaced, p.onCanceled)
	return p
}

// Handle processes a single intake.Event. Unknown statuses are skipped:
// the ordering system emits more lifecycle events than dispatch cares about.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPlaced(ctx context.Context, e Event) error {
	if strings.TrimSpace(e.BusinessID) == "" {
		return apperr.Invalidf("order %s: empty business_id", e.OrderID)
	}
	if e.TotalAmount.IsNegative() {
		return apperr.Invalidf("order %s: negative total %s", e.OrderID, e.TotalAmount)
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = p.now()
	}

	o := &domain.Order{
		ID:         e.OrderID,
		BusinessID: e.BusinessID,
		Status:     domain.StatusCourierPending,
		DeliveryAddress: domain.DeliveryAddress{
			Text:     e.DeliveryAddress,
			Location: domain.GeoPoint{Lat: e.DeliveryLat, Lng: e.DeliveryLng},
		},
		TotalAmount:   e.TotalAmount,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		UpdatedBy:     updatedBySystem,
		UpdatedByRole: updatedBySystem,
	}

	inserted, err := p.store.Insert(ctx, o)
	if err != nil {
		return err
	}
	if !inserted {
		// replayed event, already stored
		p.logger.Debug("duplicate order event skipped", logx.String("order_id", e.OrderID))
		return nil
	}

	p.logger.Info("order registered for dispatch",
		logx.String("event", "order_registered"),
		logx.String("order_id", e.OrderID),
		logx.String("business_id", e.BusinessID),
	)
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	removed, err := p.store.DeleteIfUnclaimed(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if !removed {
		// either never arrived or a courier already claimed it; a claimed
		// order keeps flowing through the fulfillment pipeline
		p.logger.Debug("cancel event had no unclaimed order", logx.String("order_id", e.OrderID))
		return nil
	}

	p.logger.Info("pending order withdrawn",
		logx.String("event", "order_withdrawn"),
		logx.String("order_id", e.OrderID),
	)
	return nil
}
