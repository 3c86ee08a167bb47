package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewDirectoryRetriesTotal returns a Prometheus counter for the number of retry attempts against the business directory
func NewDirectoryRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "directory_retries_total",
		Help: "Total number of retry attempts performed against the business directory",
	})
}

// NewOrdersClaimedTotal returns a Prometheus counter for the number of successful order claims
func NewOrdersClaimedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_claimed_total",
		Help: "Total number of orders successfully claimed by couriers",
	})
}

// NewClaimConflictsTotal returns a Prometheus counter for claim and transition attempts lost to a concurrent writer
func NewClaimConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "claim_conflicts_total",
		Help: "Total number of order claims and transitions rejected due to a state conflict",
	})
}

// NewDeliveriesSettledTotal returns a Prometheus counter for completed deliveries with settled earnings
func NewDeliveriesSettledTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_settled_total",
		Help: "Total number of delivered orders with an earnings record written",
	})
}
