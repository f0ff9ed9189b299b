package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Product identifica o produto vendido e seu valor unitário
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"nome"`
	UnitPrice float64 `json:"valor_unitario"`
}

// Client identifica o cliente que realizou a compra
type Client struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// Sale representa uma venda normalizada. Total é sempre Quantity * Product.UnitPrice.
type Sale struct {
	ID       int     `json:"id_venda"`
	Date     string  `json:"data_venda"`
	Quantity int     `json:"quantidade"`
	Product  Product `json:"produto"`
	Client   Client  `json:"cliente"`
	Total    float64 `json:"valor_total_venda"`
}

// NewSale cria uma venda calculando o valor total a partir da quantidade e do valor unitário
func NewSale(id int, date string, quantity int, product Product, client Client) Sale {
	return Sale{
		ID:       id,
		Date:     date,
		Quantity: quantity,
		Product:  product,
		Client:   client,
		Total:    saleTotal(quantity, product.UnitPrice),
	}
}

// saleTotal multiplica em decimal para que 3 * 899.90 resulte em 2699.70
func saleTotal(quantity int, unitPrice float64) float64 {
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return float64(quantity) * unitPrice
	}
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

// RawSale é o formato de importação/exportação antes da normalização
type RawSale struct {
	ProductID   string  `json:"idProduto"`
	ProductName string  `json:"nomeProduto"`
	ClientID    string  `json:"idCliente"`
	ClientName  string  `json:"nomeCliente"`
	Quantity    int     `json:"qtdVendida"`
	UnitPrice   float64 `json:"valorUnit"`
	Date        string  `json:"dataVenda"`
}
