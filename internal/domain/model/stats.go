package model

// WriterStats aggregates a writer's marketplace activity.
type WriterStats struct {
	ActiveBids      int
	ActiveOrders    int
	CompletedOrders int
	TotalEarned     float64
	Balance         float64
}

// ClientStats aggregates a client's marketplace activity.
type ClientStats struct {
	OpenJobs        int
	ActiveOrders    int
	CompletedOrders int
	TotalSpent      float64
}

// AdminStats aggregates platform-wide figures. Commission is a reporting-only
// number, never withheld from writer payouts.
type AdminStats struct {
	TotalUsers      int
	PendingWriters  int
	OpenJobs        int
	ActiveOrders    int
	CompletedOrders int
	CompletedVolume float64
	Commission      float64
}
