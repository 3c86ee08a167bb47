package domain

// Business is a pickup point. Read-only for this service; owned by the
// business-management flows. Location is nil when the record was created
// without coordinates.
type Business struct {
	ID       string
	Name     string
	Address  string
	Location *GeoPoint
}
