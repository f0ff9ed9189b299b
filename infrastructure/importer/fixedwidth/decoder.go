// Package fixedwidth decodifica arquivos de vendas em formato de posição fixa (.dat).
//
// Cada linha contém uma venda, sem delimitadores nem cabeçalho:
//
//	[0,4)     id do produto
//	[4,58)    nome do produto
//	[58,62)   id do cliente
//	[62,112)  nome do cliente
//	[112,115) quantidade vendida
//	[116,125) valor unitário (a posição 115 é um separador ignorado)
//	[125,136) data da venda
//
// As posições contam caracteres, não bytes, para que nomes acentuados em UTF-8
// mantenham o alinhamento das colunas.
package fixedwidth

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// LineWidth é o tamanho de uma linha completa
const LineWidth = 136

const maxLineSize = 1 << 20

const utf8BOM = "\ufeff"

type column struct {
	name       string
	start, end int
}

var (
	productIDColumn   = column{"idProduto", 0, 4}
	productNameColumn = column{"nomeProduto", 4, 58}
	clientIDColumn    = column{"idCliente", 58, 62}
	clientNameColumn  = column{"nomeCliente", 62, 112}
	quantityColumn    = column{"qtdVendida", 112, 115}
	unitPriceColumn   = column{"valorUnit", 116, 125}
	dateColumn        = column{"dataVenda", 125, 136}
)

// FieldError descreve um campo que não pôde ser convertido
type FieldError struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("linha %d: campo %s com valor %q inválido: %s", e.Line, e.Field, e.Value, e.Reason)
}

// Record é uma linha decodificada. Quando a quantidade falha ela vale 0 e quando
// o valor unitário falha ele vale NaN; Errors lista as falhas.
type Record struct {
	Line   int            `json:"line"`
	Sale   domain.RawSale `json:"sale"`
	Errors []FieldError   `json:"errors,omitempty"`
}

func (r Record) Valid() bool {
	return len(r.Errors) == 0
}

// Report resume a decodificação de um arquivo
type Report struct {
	DecodedLines int          `json:"decoded_lines"`
	SkippedLines int          `json:"skipped_lines"`
	InvalidLines int          `json:"invalid_lines"`
	Errors       []FieldError `json:"errors,omitempty"`
}

func (r Report) HasErrors() bool {
	return len(r.Errors) > 0
}

type Result struct {
	Records []Record
	Report  Report
}

// Valid retorna, na ordem do arquivo, as vendas sem falhas de conversão
func (r *Result) Valid() []domain.RawSale {
	sales := make([]domain.RawSale, 0, len(r.Records))
	for _, record := range r.Records {
		if record.Valid() {
			sales = append(sales, record.Sale)
		}
	}
	return sales
}

// Rejected retorna as linhas com falhas de conversão
func (r *Result) Rejected() []Record {
	var rejected []Record
	for _, record := range r.Records {
		if !record.Valid() {
			rejected = append(rejected, record)
		}
	}
	return rejected
}

// Decode lê o arquivo inteiro, separando linhas por \n ou \r\n. Linhas vazias
// ou só com espaços são ignoradas e um BOM UTF-8 no início do arquivo é descartado.
func Decode(r io.Reader) (*Result, error) {
	result := &Result{Records: make([]Record, 0)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if strings.TrimSpace(line) == "" {
			result.Report.SkippedLines++
			continue
		}

		sale, fieldErrors := DecodeLine(line)
		for i := range fieldErrors {
			fieldErrors[i].Line = lineNumber
		}

		result.Records = append(result.Records, Record{
			Line:   lineNumber,
			Sale:   sale,
			Errors: fieldErrors,
		})

		result.Report.DecodedLines++
		if len(fieldErrors) > 0 {
			result.Report.InvalidLines++
			result.Report.Errors = append(result.Report.Errors, fieldErrors...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo na linha %d", lineNumber+1)
	}

	return result, nil
}

// DecodeLine extrai os campos de uma única linha. Linhas curtas geram campos
// vazios no final, que então falham na conversão numérica.
func DecodeLine(line string) (domain.RawSale, []FieldError) {
	chars := []rune(line)

	var fieldErrors []FieldError

	quantityRaw := cut(chars, quantityColumn)
	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil {
		quantity = 0
		fieldErrors = append(fieldErrors, FieldError{
			Field:  quantityColumn.name,
			Value:  quantityRaw,
			Reason: reason(err),
		})
	}

	unitPriceRaw := cut(chars, unitPriceColumn)
	unitPrice := math.NaN()
	price, err := decimal.NewFromString(unitPriceRaw)
	if err != nil {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  unitPriceColumn.name,
			Value:  unitPriceRaw,
			Reason: reason(err),
		})
	} else {
		unitPrice = price.InexactFloat64()
	}

	sale := domain.RawSale{
		ProductID:   cut(chars, productIDColumn),
		ProductName: cut(chars, productNameColumn),
		ClientID:    cut(chars, clientIDColumn),
		ClientName:  cut(chars, clientNameColumn),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Date:        cut(chars, dateColumn),
	}

	return sale, fieldErrors
}

// cut recorta a coluna, limitando ao fim da linha, e remove espaços
func cut(chars []rune, c column) string {
	start, end := c.start, c.end
	if start >= len(chars) {
		return ""
	}
	if end > len(chars) {
		end = len(chars)
	}
	return strings.TrimSpace(string(chars[start:end]))
}

func reason(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err.Error()
	}
	return err.Error()
}
