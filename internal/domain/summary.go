package domain

import "time"

// SalesSummary contém os indicadores principais do dashboard
type SalesSummary struct {
	TotalSold  float64 `json:"totalVendido"`
	TopProduct string  `json:"produtoMaisVendido"`
	TopClient  string  `json:"clienteTopComprador"`
}

type ProductSales struct {
	Product  string `json:"produto"`
	Quantity int    `json:"quantidade"`
}

type ClientSpending struct {
	Client string  `json:"cliente"`
	Total  float64 `json:"total"`
}

type DailySales struct {
	Date  string  `json:"data"`
	Total float64 `json:"total"`
}

// Dashboard é o resultado completo de um ciclo de carga
type Dashboard struct {
	Generation     uint64           `json:"generation"`
	Mode           DataSourceMode   `json:"mode"`
	Provenance     Provenance       `json:"provenance"`
	LoadedAt       time.Time        `json:"loaded_at"`
	Sales          []Sale           `json:"sales"`
	Summary        SalesSummary     `json:"summary"`
	ProductSales   []ProductSales   `json:"product_sales"`
	ClientSpending []ClientSpending `json:"client_spending"`
	DailySales     []DailySales     `json:"daily_sales"`
}
