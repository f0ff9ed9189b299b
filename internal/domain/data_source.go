package domain

import "fmt"

// DataSourceMode indica de onde as vendas são carregadas
type DataSourceMode string

const (
	MockMode   DataSourceMode = "mock"
	RemoteMode DataSourceMode = "remote"
)

// Toggle retorna o modo oposto
func (m DataSourceMode) Toggle() DataSourceMode {
	if m == RemoteMode {
		return MockMode
	}
	return RemoteMode
}

func ParseDataSourceMode(s string) (DataSourceMode, error) {
	switch DataSourceMode(s) {
	case MockMode, RemoteMode:
		return DataSourceMode(s), nil
	default:
		return "", fmt.Errorf("modo de fonte de dados inválido: %q", s)
	}
}

// Provenance indica a origem efetiva dos dados entregues por um carregamento
type Provenance string

const (
	// FromMock: modo mock selecionado
	FromMock Provenance = "mock"
	// FromSource: dados entregues pela API remota
	FromSource Provenance = "source"
	// FromFallback: a API remota falhou e os dados mock foram usados no lugar
	FromFallback Provenance = "fallback"
)
