package entities

// AdminStats is the platform-wide dashboard summary
type AdminStats struct {
	TotalUsers     int64   `json:"totalUsers"`
	TotalProducts  int64   `json:"totalProducts"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PickupRequests int64   `json:"pickupRequests"`
}

// DealerStats is the dealer dashboard summary
type DealerStats struct {
	TotalProducts   int64   `json:"totalProducts"`
	TotalEarnings   float64 `json:"totalEarnings"`
	PendingApproval int64   `json:"pendingApproval"`
	OrdersReceived  int64   `json:"ordersReceived"`
}

// CustomerStats is the customer dashboard summary
type CustomerStats struct {
	TotalPickups int64   `json:"totalPickups"`
	TotalOrders  int64   `json:"totalOrders"`
	TotalSpent   float64 `json:"totalSpent"`
}
