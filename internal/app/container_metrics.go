package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	DirectoryRetriesTotal  prometheus.Counter `name:"directory_retries_total"`
	OrdersClaimedTotal     prometheus.Counter `name:"orders_claimed_total"`
	ClaimConflictsTotal    prometheus.Counter `name:"claim_conflicts_total"`
	DeliveriesSettledTotal prometheus.Counter `name:"deliveries_settled_total"`
}

func provideMetrics() (metricsOut, error) {
	var out metricsOut
	var err error

	if out.RateLimitExceededTotal, err = registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.DirectoryRetriesTotal, err = registerCounter("directory_retries_total", metrics.NewDirectoryRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.OrdersClaimedTotal, err = registerCounter("orders_claimed_total", metrics.NewOrdersClaimedTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.ClaimConflictsTotal, err = registerCounter("claim_conflicts_total", metrics.NewClaimConflictsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.DeliveriesSettledTotal, err = registerCounter("deliveries_settled_total", metrics.NewDeliveriesSettledTotal()); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

// registerCounter registers c with the default registerer, reusing the
// already registered collector when a previous container built the same one.
func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
