package salesapidomain

// Venda é o formato retornado por GET /vendas
type Venda struct {
	Product  VendaProduct `json:"produto"`
	Client   VendaClient  `json:"cliente"`
	Quantity int          `json:"qtdVendida"`
	Date     string       `json:"dataVenda"`
}

type VendaProduct struct {
	ID        string  `json:"idProduto"`
	Name      string  `json:"nomeProduto"`
	UnitPrice float64 `json:"valorUnit"`
}

type VendaClient struct {
	ID   string `json:"idCliente"`
	Name string `json:"nomeCliente"`
}
