package config

import (
	"time"

	"github.com/shopspring/decimal"
)

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch_db",
}

var defaultKafka = Kafka{
	Brokers: nil,
	Topic:   "",
	GroupID: "courier-dispatch-intake",
}

var defaultDispatch = Dispatch{
	DefaultRadiusM:      5000,
	OperationTimeout:    3 * time.Second,
	FallbackCourierRate: decimal.NewFromInt(20),
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 100000,
}

var defaultOps = Ops{Addr: "127.0.0.1:6060"}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default intake consumer settings (disabled).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultAuth returns the default auth settings. An empty secret is allowed
// here so the worker can start without one; the HTTP container requires it.
func DefaultAuth() Auth {
	return Auth{}
}

// DefaultDispatch returns the default dispatch tunables.
func DefaultDispatch() Dispatch {
	return defaultDispatch
}

// DefaultRateLimit returns the default rate limiting settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultOps returns the default ops listener settings.
func DefaultOps() Ops {
	return defaultOps
}
