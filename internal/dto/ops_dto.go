package dto

type DashboardSummaryResponse struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	PendingReturns int64            `json:"pending_returns"`
	TotalProducts  int64            `json:"total_products"`
	LowStockItems  int              `json:"low_stock_items"`
}

type LogEntryResponse struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Module    string                 `json:"module,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
