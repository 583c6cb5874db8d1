// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Report records mirror the backend report endpoints. Like the business
// entities they are rendered as-is, never derived or recomputed here.

type SalesReportRow struct {
	SaleNumber    string  `json:"saleNumber"`
	StoreName     string  `json:"storeName"`
	ClientName    string  `json:"clientName,omitempty"`
	SaleType      string  `json:"saleType"`
	PaymentMethod string  `json:"paymentMethod"`
	Total         float64 `json:"totalAmount"`
	Date          string  `json:"date"`
}

type SalesReport struct {
	From         string           `json:"from"`
	To           string           `json:"to"`
	TotalSales   int              `json:"totalSales"`
	TotalRevenue float64          `json:"totalRevenue"`
	Rows         []SalesReportRow `json:"rows"`
}

type InventoryReportRow struct {
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	StoreName    string `json:"storeName"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStockLevel"`
	LowStock     bool   `json:"lowStock"`
}

type InventoryReport struct {
	GeneratedAt string               `json:"generatedAt"`
	Rows        []InventoryReportRow `json:"rows"`
}

type ProfitabilityRow struct {
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	UnitsSold   int     `json:"unitsSold"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
	Margin      float64 `json:"margin"`
}

type ProfitabilityReport struct {
	From string             `json:"from"`
	To   string             `json:"to"`
	Rows []ProfitabilityRow `json:"rows"`
}

type BestSellingProduct struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	UnitsSold   int     `json:"unitsSold"`
	Revenue     float64 `json:"revenue"`
}

type TraceabilityEntry struct {
	BatchCode    string `json:"batchCode"`
	MovementType string `json:"movementType"`
	StoreName    string `json:"storeName,omitempty"`
	Quantity     int    `json:"quantity"`
	Date         string `json:"date"`
}

type TraceabilityReport struct {
	ProductID int                 `json:"productId"`
	Entries   []TraceabilityEntry `json:"entries"`
}

type ExecutiveDashboard struct {
	TodaySales      float64 `json:"todaySales"`
	MonthSales      float64 `json:"monthSales"`
	ActiveProducts  int     `json:"activeProducts"`
	LowStockAlerts  int     `json:"lowStockAlerts"`
	ExpiringBatches int     `json:"expiringBatches"`
	TopProducts     []BestSellingProduct `json:"topProducts,omitempty"`
}
