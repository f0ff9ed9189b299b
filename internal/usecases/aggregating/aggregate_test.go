package aggregating

import (
	"math"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sale(id int, date string, quantity int, product string, unitPrice float64, client string) domain.Sale {
	return domain.NewSale(id, date, quantity,
		domain.Product{ID: id * 10, Name: product, UnitPrice: unitPrice},
		domain.Client{ID: id * 100, Name: client},
	)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		sales    []domain.Sale
		expected domain.SalesSummary
	}{
		{
			name:     "Lista vazia retorna valores neutros",
			sales:    nil,
			expected: domain.SalesSummary{TotalSold: 0, TopProduct: "", TopClient: ""},
		},
		{
			name: "Duas vendas do mesmo cliente",
			sales: []domain.Sale{
				sale(1, "2025-09-29", 2, "Teclado Mecânico Gamer", 350.75, "Ana Silva"),
				sale(2, "2025-09-29", 1, "Mouse Sem Fio Ergonômico", 120.00, "Ana Silva"),
			},
			expected: domain.SalesSummary{
				TotalSold:  821.50,
				TopProduct: "Teclado Mecânico Gamer",
				TopClient:  "Ana Silva",
			},
		},
		{
			name: "Empate de quantidade e valor favorece a primeira ocorrência",
			sales: []domain.Sale{
				sale(1, "2025-09-29", 2, "Webcam", 100, "Carlos"),
				sale(2, "2025-09-29", 2, "Headset", 100, "Maria"),
			},
			expected: domain.SalesSummary{
				TotalSold:  400,
				TopProduct: "Webcam",
				TopClient:  "Carlos",
			},
		},
		{
			name: "Quantidade e valor zerados não elegem ninguém",
			sales: []domain.Sale{
				sale(1, "2025-09-29", 0, "Brinde", 0, "Ana"),
			},
			expected: domain.SalesSummary{TotalSold: 0, TopProduct: "", TopClient: ""},
		},
		{
			name: "Produtos distintos com o mesmo nome são somados",
			sales: []domain.Sale{
				domain.NewSale(1, "2025-09-29", 2, domain.Product{ID: 1, Name: "Cabo"}, domain.Client{ID: 1, Name: "Ana"}),
				domain.NewSale(2, "2025-09-29", 3, domain.Product{ID: 2, Name: "Monitor"}, domain.Client{ID: 2, Name: "Ana"}),
				domain.NewSale(3, "2025-09-29", 2, domain.Product{ID: 3, Name: "Cabo"}, domain.Client{ID: 3, Name: "Bia"}),
			},
			expected: domain.SalesSummary{TotalSold: 0, TopProduct: "Cabo", TopClient: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.sales)
			assert.InDelta(t, tt.expected.TotalSold, summary.TotalSold, 1e-9)
			assert.Equal(t, tt.expected.TopProduct, summary.TopProduct)
			assert.Equal(t, tt.expected.TopClient, summary.TopClient)
		})
	}
}

func TestMockDataset(t *testing.T) {
	sales := domain.MockSales()

	summary := Summarize(sales)
	assert.Equal(t, 8151.75, summary.TotalSold)
	assert.Equal(t, "Monitor LED 24\"", summary.TopProduct)
	assert.Equal(t, "Ana Silva", summary.TopClient)

	assert.Equal(t, []domain.ProductSales{
		{Product: "Teclado Mecânico Gamer", Quantity: 3},
		{Product: "Mouse Sem Fio Ergonômico", Quantity: 2},
		{Product: "Monitor LED 24\"", Quantity: 5},
		{Product: "Webcam Full HD", Quantity: 2},
		{Product: "Headset Gamer RGB", Quantity: 4},
	}, ProductSales(sales))

	assert.Equal(t, []domain.ClientSpending{
		{Client: "Ana Silva", Total: 3521.2},
		{Client: "Carlos Pereira", Total: 680},
		{Client: "Maria Santos", Total: 2150.55},
		{Client: "João Oliveira", Total: 1800},
	}, ClientSpending(sales))

	assert.Equal(t, []domain.DailySales{
		{Date: "2025-09-29", Total: 821.5},
		{Date: "2025-09-30", Total: 3050.45},
		{Date: "2025-10-01", Total: 680},
		{Date: "2025-10-02", Total: 3599.8},
	}, DailySales(sales))
}

func TestRollupsEmpty(t *testing.T) {
	assert.NotNil(t, ProductSales(nil))
	assert.Empty(t, ProductSales(nil))
	assert.NotNil(t, ClientSpending(nil))
	assert.Empty(t, ClientSpending(nil))
	assert.NotNil(t, DailySales(nil))
	assert.Empty(t, DailySales(nil))
}

func TestDailySalesSortedByDate(t *testing.T) {
	sales := []domain.Sale{
		sale(1, "2025-10-02", 1, "A", 10, "X"),
		sale(2, "2024-12-31", 1, "A", 5, "X"),
		sale(3, "2025-10-02", 2, "B", 10, "Y"),
		sale(4, "2025-01-15", 1, "C", 1, "Z"),
	}

	assert.Equal(t, []domain.DailySales{
		{Date: "2024-12-31", Total: 5},
		{Date: "2025-01-15", Total: 1},
		{Date: "2025-10-02", Total: 30},
	}, DailySales(sales))
}

func TestSummarizeIgnoresNonFiniteTotals(t *testing.T) {
	sales := []domain.Sale{
		{ID: 1, Quantity: 1, Product: domain.Product{Name: "A"}, Client: domain.Client{Name: "X"}, Total: 10},
		{ID: 2, Quantity: 1, Product: domain.Product{Name: "B"}, Client: domain.Client{Name: "Y"}, Total: math.NaN()},
	}

	summary := Summarize(sales)
	assert.Equal(t, 10.0, summary.TotalSold)
	assert.Equal(t, "X", summary.TopClient)
}

// Propriedades verificadas sobre entradas aleatórias com semente fixa
func TestAggregationProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	products := []string{"Teclado", "Mouse", "Monitor", "Webcam"}
	clients := []string{"Ana", "Carlos", "Maria"}
	dates := []string{"2025-09-29", "2025-09-30", "2025-10-01", "2025-10-02", "2024-01-01"}

	for round := 0; round < 50; round++ {
		n := rng.Intn(20)
		sales := make([]domain.Sale, 0, n)
		expectedTotal := 0.0
		expectedQuantity := 0
		distinctProducts := make(map[string]struct{})

		for i := 0; i < n; i++ {
			s := sale(i+1,
				dates[rng.Intn(len(dates))],
				rng.Intn(10)+1,
				products[rng.Intn(len(products))],
				float64(rng.Intn(100000))/100,
				clients[rng.Intn(len(clients))],
			)
			sales = append(sales, s)
			expectedTotal += float64(s.Quantity) * s.Product.UnitPrice
			expectedQuantity += s.Quantity
			distinctProducts[s.Product.Name] = struct{}{}
		}

		summary := Summarize(sales)
		assert.InDelta(t, expectedTotal, summary.TotalSold, 1e-6)

		byProduct := ProductSales(sales)
		quantity := 0
		names := make(map[string]struct{})
		for _, p := range byProduct {
			quantity += p.Quantity
			names[p.Product] = struct{}{}
		}
		assert.Equal(t, expectedQuantity, quantity)
		assert.Equal(t, distinctProducts, names)

		daily := DailySales(sales)
		require.True(t, sort.SliceIsSorted(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date }))

		clientTotal := 0.0
		for _, c := range ClientSpending(sales) {
			clientTotal += c.Total
		}
		assert.InDelta(t, expectedTotal, clientTotal, 1e-6)
	}
}

func TestFilterByPeriod(t *testing.T) {
	sales := domain.MockSales()
	day := func(s string) *time.Time {
		d, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		return &d
	}

	assert.Equal(t, sales, FilterByPeriod(sales, nil, nil))

	filtered := FilterByPeriod(sales, day("2025-09-30"), day("2025-10-01"))
	require.Len(t, filtered, 4)
	assert.Equal(t, 3, filtered[0].ID)
	assert.Equal(t, 6, filtered[3].ID)

	assert.Len(t, FilterByPeriod(sales, day("2025-10-02"), nil), 2)
	assert.Len(t, FilterByPeriod(sales, nil, day("2025-09-29")), 2)
	assert.Empty(t, FilterByPeriod(sales, day("2026-01-01"), nil))
}
