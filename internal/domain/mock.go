package domain

var mockSales = []Sale{
	NewSale(1, "2025-09-29", 2, Product{ID: 1001, Name: "Teclado Mecânico Gamer", UnitPrice: 350.75}, Client{ID: 201, Name: "Ana Silva"}),
	NewSale(2, "2025-09-29", 1, Product{ID: 1002, Name: "Mouse Sem Fio Ergonômico", UnitPrice: 120.00}, Client{ID: 202, Name: "Carlos Pereira"}),
	NewSale(3, "2025-09-30", 3, Product{ID: 1003, Name: "Monitor LED 24\"", UnitPrice: 899.90}, Client{ID: 201, Name: "Ana Silva"}),
	NewSale(4, "2025-09-30", 1, Product{ID: 1001, Name: "Teclado Mecânico Gamer", UnitPrice: 350.75}, Client{ID: 203, Name: "Maria Santos"}),
	NewSale(5, "2025-10-01", 2, Product{ID: 1004, Name: "Webcam Full HD", UnitPrice: 280.00}, Client{ID: 202, Name: "Carlos Pereira"}),
	NewSale(6, "2025-10-01", 1, Product{ID: 1002, Name: "Mouse Sem Fio Ergonômico", UnitPrice: 120.00}, Client{ID: 201, Name: "Ana Silva"}),
	NewSale(7, "2025-10-02", 4, Product{ID: 1005, Name: "Headset Gamer RGB", UnitPrice: 450.00}, Client{ID: 204, Name: "João Oliveira"}),
	NewSale(8, "2025-10-02", 2, Product{ID: 1003, Name: "Monitor LED 24\"", UnitPrice: 899.90}, Client{ID: 203, Name: "Maria Santos"}),
}

// MockSales retorna uma cópia do conjunto fixo de vendas de demonstração
func MockSales() []Sale {
	sales := make([]Sale, len(mockSales))
	copy(sales, mockSales)
	return sales
}
