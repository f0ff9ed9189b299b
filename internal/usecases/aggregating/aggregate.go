// Package aggregating calcula o resumo e os agrupamentos do dashboard de vendas.
//
// Todas as funções são puras e aceitam lista vazia. Produtos e clientes são
// agrupados pelo nome exibido, não pelo ID: dois clientes distintos com o mesmo
// nome são somados juntos. Os agrupamentos preservam a ordem da primeira
// ocorrência, exceto DailySales, que é ordenado pela data.
package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type keyedTotal struct {
	key   string
	total decimal.Decimal
}

// Summarize calcula o total vendido, o produto mais vendido (por quantidade) e
// o cliente que mais comprou (por valor). Em caso de empate vence quem apareceu
// primeiro; sem vendas os nomes ficam vazios.
func Summarize(sales []domain.Sale) domain.SalesSummary {
	totalSold := decimal.Zero
	for _, sale := range sales {
		totalSold = totalSold.Add(money(sale.Total))
	}

	topProduct := ""
	maxQuantity := 0
	for _, product := range ProductSales(sales) {
		if product.Quantity > maxQuantity {
			maxQuantity = product.Quantity
			topProduct = product.Product
		}
	}

	topClient := ""
	maxSpending := decimal.Zero
	for _, client := range sumByKey(sales, func(s domain.Sale) string { return s.Client.Name }) {
		if client.total.GreaterThan(maxSpending) {
			maxSpending = client.total
			topClient = client.key
		}
	}

	return domain.SalesSummary{
		TotalSold:  totalSold.InexactFloat64(),
		TopProduct: topProduct,
		TopClient:  topClient,
	}
}

// ProductSales soma a quantidade vendida por nome de produto
func ProductSales(sales []domain.Sale) []domain.ProductSales {
	result := make([]domain.ProductSales, 0)
	index := make(map[string]int)

	for _, sale := range sales {
		i, exists := index[sale.Product.Name]
		if !exists {
			i = len(result)
			index[sale.Product.Name] = i
			result = append(result, domain.ProductSales{Product: sale.Product.Name})
		}
		result[i].Quantity += sale.Quantity
	}

	return result
}

// ClientSpending soma o valor gasto por nome de cliente
func ClientSpending(sales []domain.Sale) []domain.ClientSpending {
	totals := sumByKey(sales, func(s domain.Sale) string { return s.Client.Name })

	result := make([]domain.ClientSpending, 0, len(totals))
	for _, t := range totals {
		result = append(result, domain.ClientSpending{
			Client: t.key,
			Total:  t.total.InexactFloat64(),
		})
	}

	return result
}

// DailySales soma o faturamento por data. Datas ISO (YYYY-MM-DD) ordenadas como
// texto ficam em ordem cronológica.
func DailySales(sales []domain.Sale) []domain.DailySales {
	totals := sumByKey(sales, func(s domain.Sale) string { return s.Date })

	result := make([]domain.DailySales, 0, len(totals))
	for _, t := range totals {
		result = append(result, domain.DailySales{
			Date:  t.key,
			Total: t.total.InexactFloat64(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result
}

// sumByKey soma o total das vendas por chave, na ordem da primeira ocorrência
func sumByKey(sales []domain.Sale, keyOf func(domain.Sale) string) []keyedTotal {
	totals := make([]keyedTotal, 0)
	index := make(map[string]int)

	for _, sale := range sales {
		key := keyOf(sale)
		i, exists := index[key]
		if !exists {
			i = len(totals)
			index[key] = i
			totals = append(totals, keyedTotal{key: key, total: decimal.Zero})
		}
		totals[i].total = totals[i].total.Add(money(sale.Total))
	}

	return totals
}

// money converte para decimal; valores não finitos contam como zero
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// FilterByPeriod mantém as vendas cuja data está no intervalo fechado
// [start, end]. Limites nil não restringem.
func FilterByPeriod(sales []domain.Sale, start, end *time.Time) []domain.Sale {
	if start == nil && end == nil {
		return sales
	}

	var from, to string
	if start != nil {
		from = start.Format(time.DateOnly)
	}
	if end != nil {
		to = end.Format(time.DateOnly)
	}

	filtered := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if from != "" && sale.Date < from {
			continue
		}
		if to != "" && sale.Date > to {
			continue
		}
		filtered = append(filtered, sale)
	}

	return filtered
}
