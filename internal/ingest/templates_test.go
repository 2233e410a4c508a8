package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmoreira/findash/internal/models"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadCashFlow(t *testing.T) {
	path := writeTemp(t, "fluxo.csv",
		"id,mes,empresa,tipo,categoria,data_vencimento,valor,status\n"+
			"cf-1,Janeiro,Empresa A,Receber,Vendas,15/01/2025,\"2.500,00\",Pago\n"+
			",2,Empresa A,Pagar,Fornecedores,20/02/2025,800,Aberto\n")

	entries, err := ReadCashFlow(path)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "cf-1", first.ID)
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, models.FlowReceber, first.Type)
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), first.DueDate)
	assert.True(t, decimal.RequireFromString("2500").Equal(first.Amount))
	assert.Equal(t, models.StatusPago, first.Status)

	second := entries[1]
	assert.Empty(t, second.ID)
	assert.Equal(t, 2, second.Month)
	assert.Equal(t, models.FlowPagar, second.Type)
}

func TestReadCashFlow_BadCellsDegradeToZero(t *testing.T) {
	path := writeTemp(t, "fluxo.csv",
		"id,mes,empresa,tipo,categoria,data_vencimento,valor,status\n"+
			",Mes Treze,Empresa A,Receber,Vendas,quando puder,muito,Aberto\n")

	entries, err := ReadCashFlow(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Month)
	assert.True(t, entries[0].Amount.IsZero())
	assert.True(t, entries[0].DueDate.IsZero())
}

func TestReadCashFlow_CustomDelimiter(t *testing.T) {
	original := Delimiter
	SetDelimiter(';')
	defer SetDelimiter(original)

	path := writeTemp(t, "fluxo.csv",
		"id;mes;empresa;tipo;categoria;data_vencimento;valor;status\n"+
			"cf-1;Janeiro;Empresa A;Receber;Vendas;15/01/2025;1.000,00;Pago\n")

	entries, err := ReadCashFlow(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Empresa A", entries[0].Company)
	assert.True(t, decimal.NewFromInt(1000).Equal(entries[0].Amount))
}

func TestReadBudget(t *testing.T) {
	path := writeTemp(t, "orcamento.csv",
		"mes,empresa,categoria,orcado,realizado,responsavel,observacoes\n"+
			"Janeiro,Empresa A,Marketing,\"1.000,00\",\"1.200,00\",Maria,Campanha\n")

	entries, err := ReadBudget(path)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Month)
	assert.Equal(t, "Marketing", entries[0].Category)
	assert.True(t, decimal.NewFromInt(1000).Equal(entries[0].Budgeted))
	assert.True(t, decimal.NewFromInt(1200).Equal(entries[0].Actual))
	assert.Equal(t, "Maria", entries[0].Owner)
	assert.Equal(t, "Campanha", entries[0].Notes)
}

func TestReadCashFlow_MissingFile(t *testing.T) {
	_, err := ReadCashFlow("nonexistent.csv")

	assert.Error(t, err)
}
