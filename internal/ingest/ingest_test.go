package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRawRows(t *testing.T) {
	csvData := "Ano,Mes,Categoria,Empresa,Valor\n" +
		"2025,Janeiro,Faturamento Bruto,Empresa A,\"1.000,00\"\n" +
		"2025,Janeiro,Custo Variável,Empresa A,-300\n"

	rows, err := readRawRows(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025", rows[0]["Ano"])
	assert.Equal(t, "Faturamento Bruto", rows[0]["Categoria"])
	assert.Equal(t, "1.000,00", rows[0]["Valor"])
	assert.Equal(t, "-300", rows[1]["Valor"])
}

func TestReadRawRows_ShortRecordsArePadded(t *testing.T) {
	csvData := "Ano,Mes,Valor\n2025,Janeiro\n"

	rows, err := readRawRows(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["Valor"])
}

func TestReadRawRows_EmptyInput(t *testing.T) {
	rows, err := readRawRows(strings.NewReader(""))

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRawRows_HeaderOnly(t *testing.T) {
	rows, err := readRawRows(strings.NewReader("Ano,Mes,Valor\n"))

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRawRows_PreservesHeaderCasing(t *testing.T) {
	csvData := "ano,mês,categoria,empresa,valor\n2025,Março,Pessoal,B,10\n"

	rows, err := readRawRows(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	_, ok := rows[0]["mês"]
	assert.True(t, ok, "lowercase headers stay lowercase; the classifier resolves variants")
}

func TestReadRawRows_CustomDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)
	SetDelimiter(';')

	rows, err := readRawRows(strings.NewReader("Ano;Valor\n2025;100\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0]["Valor"])
}

func TestReadRawRows_MissingFile(t *testing.T) {
	_, err := ReadRawRows("nonexistent.csv")

	assert.Error(t, err)
}
