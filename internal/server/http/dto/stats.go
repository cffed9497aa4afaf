package dto

// WriterStatsResponse describes the writer dashboard aggregates.
type WriterStatsResponse struct {
	ActiveBids      int     `json:"activeBids"`
	ActiveOrders    int     `json:"activeOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalEarned     float64 `json:"totalEarned"`
	Balance         float64 `json:"balance"`
}

// ClientStatsResponse describes the client dashboard aggregates.
type ClientStatsResponse struct {
	OpenJobs        int     `json:"openJobs"`
	ActiveOrders    int     `json:"activeOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalSpent      float64 `json:"totalSpent"`
}

// AdminStatsResponse describes the platform-wide aggregates.
type AdminStatsResponse struct {
	TotalUsers      int     `json:"totalUsers"`
	PendingWriters  int     `json:"pendingWriters"`
	OpenJobs        int     `json:"openJobs"`
	ActiveOrders    int     `json:"activeOrders"`
	CompletedOrders int     `json:"completedOrders"`
	CompletedVolume float64 `json:"completedVolume"`
	Commission      float64 `json:"commission"`
}
