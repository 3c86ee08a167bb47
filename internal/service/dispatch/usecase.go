package dispatch

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/geo"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/ports/settlementtx"
)

// errPredicateMismatch signals that a conditional update inside the
// settlement transaction matched no row; the caller re-reads and classifies.
var errPredicateMismatch = errors.New("predicate mismatch")

// placeholderPickupAddress is returned when the claimed order's business
// record is missing or unreadable; a degraded accept is better than failing
// an already-won claim.
const placeholderPickupAddress = "pickup address unavailable"

// Config stores assignment service tunables.
type Config struct {
	DefaultRadiusM   float64
	OperationTimeout time.Duration
	FallbackRate     decimal.Decimal
}

// Counters are optional dispatch metrics; nil fields are skipped.
type Counters struct {
	Claimed   counter
	Conflicts counter
	Settled   counter
}

// Service - the order assignment service: discovery, atomic claim and the
// fulfillment transitions. All mutual exclusion is delegated to the order
// store's conditional updates; the service itself never retries a lost race.
type Service struct {
	orders    orderRepository
	directory businessDirectory
	settings  settingsProvider
	ledger    earningsLedger
	estimator PickupEstimator
	cfg       Config
	counters  Counters
	logger    logx.Logger
	now       func() time.Time
	newID     func() string
}

// NewService - creates a new dispatch Service.
func NewService(
	orders orderRepository,
	directory businessDirectory,
	settings settingsProvider,
	ledger earningsLedger,
	estimator PickupEstimator,
	cfg Config,
	logger logx.Logger,
) *Service {
	if cfg.DefaultRadiusM <= 0 {
		cfg.DefaultRadiusM = 5000
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	if cfg.FallbackRate.IsZero() {
		cfg.FallbackRate = decimal.NewFromInt(20)
	}
	return &Service{
		orders:    orders,
		directory: directory,
		settings:  settings,
		ledger:    ledger,
		estimator: estimator,
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// WithCounters attaches dispatch metrics to the service.
func (s *Service) WithCounters(c Counters) *Service {
	s.counters = c
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

func inc(c counter) {
	if c != nil {
		c.Inc()
	}
}

func validateID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", apperr.ErrInvalid
	}
	return id, nil
}

func validLocation(p domain.GeoPoint) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// ListAvailable returns claimable orders within radiusM of the courier,
// closest first. radiusM <= 0 means the configured default. Orders whose
// business record or location is missing are skipped: a data-integrity
// tolerance, not a failure.
func (s *Service) ListAvailable(ctx context.Context, location domain.GeoPoint, radiusM float64) ([]domain.AvailableOrder, error) {
	if !validLocation(location) {
		return nil, apperr.ErrInvalid
	}
	if radiusM <= 0 {
		radiusM = s.cfg.DefaultRadiusM
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pending, err := s.orders.ListAwaitingCourier(ctx)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []domain.AvailableOrder{}, nil
	}

	ids := make([]string, 0, len(pending))
	seen := make(map[string]struct{}, len(pending))
	for _, o := range pending {
		if _, ok := seen[o.BusinessID]; ok {
			continue
		}
		seen[o.BusinessID] = struct{}{}
		ids = append(ids, o.BusinessID)
	}

	businesses, err := s.directory.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AvailableOrder, 0, len(pending))
	for _, o := range pending {
		b, ok := businesses[o.BusinessID]
		if !ok || b.Location == nil {
			s.logger.Debug("skipping order without locatable business",
				logx.String("order_id", o.ID),
				logx.String("business_id", o.BusinessID),
			)
			continue
		}

		d := geo.Distance(location, *b.Location)
		if d > radiusM {
			continue
		}

		out = append(out, domain.AvailableOrder{
			OrderID:          o.ID,
			BusinessID:       b.ID,
			BusinessName:     b.Name,
			BusinessAddress:  b.Address,
			BusinessLocation: *b.Location,
			DistanceM:        d,
			PickupEstimate:   s.estimator.Estimate(d),
			TotalAmount:      o.TotalAmount,
			DeliveryAddress:  o.DeliveryAddress,
			CreatedAt:        o.CreatedAt,
		})
	}

	// Ties keep the store's deterministic order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceM < out[j].DistanceM })
	return out, nil
}

// Accept claims the order for the courier. Exactly one concurrent caller
// wins; every other caller receives a classified conflict.
func (s *Service) Accept(ctx context.Context, orderID, courierID string) (domain.AcceptedOrder, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return domain.AcceptedOrder{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.Claim(ctx, orderID, courierID, s.now())
	if err != nil {
		return domain.AcceptedOrder{}, err
	}
	if o == nil {
		inc(s.counters.Conflicts)
		return domain.AcceptedOrder{}, s.classifyClaimFailure(ctx, orderID)
	}

	inc(s.counters.Claimed)
	s.logger.Info("order claimed",
		logx.String("event", "order_claimed"),
		logx.String("order_id", o.ID),
		logx.String("courier_id", courierID),
		logx.String("business_id", o.BusinessID),
	)

	accepted := domain.AcceptedOrder{Order: *o, PickupAddress: placeholderPickupAddress}
	b, dirErr := s.directory.GetByID(ctx, o.BusinessID)
	switch {
	case dirErr != nil:
		s.logger.Warn("pickup enrichment failed",
			logx.String("order_id", o.ID),
			logx.Err(dirErr),
		)
	case b != nil:
		accepted.PickupAddress = b.Address
		if b.Location != nil {
			accepted.PickupLocation = *b.Location
		}
	}
	return accepted, nil
}

// classifyClaimFailure re-reads the order after a no-match claim and turns
// the observation into a precise caller-facing error.
func (s *Service) classifyClaimFailure(ctx context.Context, orderID string) error {
	cur, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	switch {
	case cur == nil:
		return apperr.NotFoundf("order %s not found", orderID)
	case cur.CourierID != nil:
		return apperr.Conflictf("order %s already assigned to courier %s", orderID, *cur.CourierID)
	case cur.Status != domain.StatusCourierPending:
		return apperr.Conflictf("order %s is %s, not %s", orderID, cur.Status, domain.StatusCourierPending)
	default:
		return apperr.Conflictf("order %s claim lost to a concurrent update", orderID)
	}
}

// classifyTransitionFailure is the single disambiguation path shared by all
// post-claim transitions.
func (s *Service) classifyTransitionFailure(ctx context.Context, orderID, courierID string, expected domain.OrderStatus) error {
	cur, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	switch {
	case cur == nil:
		return apperr.NotFoundf("order %s not found", orderID)
	case !cur.AssignedTo(courierID):
		return apperr.Forbiddenf("order %s is not assigned to you", orderID)
	case cur.Status != expected:
		return apperr.Conflictf("order %s is %s, expected %s", orderID, cur.Status, expected)
	default:
		return apperr.Conflictf("order %s state changed", orderID)
	}
}

type conditionalUpdate func(ctx context.Context, orderID, courierID string, now time.Time) (*domain.Order, error)

func (s *Service) transition(ctx context.Context, orderID, courierID string, expected domain.OrderStatus, update conditionalUpdate) (*domain.Order, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := update(ctx, orderID, courierID, s.now())
	if err != nil {
		return nil, err
	}
	if o == nil {
		inc(s.counters.Conflicts)
		return nil, s.classifyTransitionFailure(ctx, orderID, courierID, expected)
	}

	s.logger.Info("order transitioned",
		logx.String("event", "order_transitioned"),
		logx.String("order_id", o.ID),
		logx.String("courier_id", courierID),
		logx.String("status", string(o.Status)),
	)
	return o, nil
}

// Pickup applies the courier_assigned → picked_up transition for the
// assigned courier.
func (s *Service) Pickup(ctx context.Context, orderID, courierID string) (domain.Order, error) {
	o, err := s.transition(ctx, orderID, courierID, domain.StatusCourierAssigned, s.orders.MarkPickedUp)
	if err != nil {
		return domain.Order{}, err
	}
	return *o, nil
}

// StartDelivery applies the picked_up → delivering transition for the
// assigned courier.
func (s *Service) StartDelivery(ctx context.Context, orderID, courierID string) (domain.Order, error) {
	o, err := s.transition(ctx, orderID, courierID, domain.StatusPickedUp, s.orders.MarkDelivering)
	if err != nil {
		return domain.Order{}, err
	}
	return *o, nil
}

// Deliver applies the final delivering → delivered transition and settles
// earnings. The payout rate is read before the conditional update; the
// status change and the ledger append commit in one transaction.
func (s *Service) Deliver(ctx context.Context, orderID, courierID string) (domain.Settlement, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return domain.Settlement{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rate, ok, err := s.settings.CourierRate(ctx)
	if err != nil {
		return domain.Settlement{}, err
	}
	if !ok {
		rate = s.cfg.FallbackRate
	}

	var (
		delivered  *domain.Order
		earningsID = s.newID()
		now        = s.now()
	)
	err = s.orders.WithTx(ctx, func(tx settlementtx.Repository) error {
		o, err := tx.MarkDelivered(ctx, orderID, courierID, rate, now)
		if err != nil {
			return err
		}
		if o == nil {
			return errPredicateMismatch
		}
		delivered = o

		return tx.InsertEarning(ctx, &domain.EarningsRecord{
			ID:         earningsID,
			CourierID:  courierID,
			OrderID:    o.ID,
			BusinessID: o.BusinessID,
			Amount:     rate,
			OrderTotal: o.TotalAmount,
			CreatedAt:  now,
		})
	})
	if errors.Is(err, errPredicateMismatch) {
		inc(s.counters.Conflicts)
		return domain.Settlement{}, s.classifyTransitionFailure(ctx, orderID, courierID, domain.StatusDelivering)
	}
	if err != nil {
		return domain.Settlement{}, err
	}

	inc(s.counters.Settled)
	s.logger.Info("delivery settled",
		logx.String("event", "delivery_settled"),
		logx.String("order_id", delivered.ID),
		logx.String("courier_id", courierID),
		logx.String("earnings_id", earningsID),
		logx.String("earning", rate.String()),
	)
	return domain.Settlement{Order: *delivered, EarningsID: earningsID, Earning: rate}, nil
}

// Earnings returns the courier's settlement records.
func (s *Service) Earnings(ctx context.Context, courierID string) ([]domain.EarningsRecord, error) {
	courierID, err := validateID(courierID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.ledger.ListByCourier(ctx, courierID)
}
