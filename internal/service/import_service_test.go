package service

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCSVSemicolonSeparated(t *testing.T) {
	raw := "CO_CADERNO;NU_QUESTAO;GRANDE_AREA\n101;1;Clinica Medica\n101;2;Cirurgia\n"

	table, err := readCSV(strings.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, table.rows, 2)
	assert.Equal(t, "101", table.get(table.rows[0], "CO_CADERNO"))
	assert.Equal(t, "Cirurgia", table.get(table.rows[1], "GRANDE_AREA"))
}

func TestReadCSVLatin1(t *testing.T) {
	// cabeçalho e célula com acento, codificados em Latin-1
	enc := charmap.ISO8859_1.NewEncoder()
	line, err := enc.String("DIAGNÓSTICO;CO_CADERNO\nSepse grave é rara;101\n")
	require.NoError(t, err)

	table, err := readCSV(bytes.NewReader([]byte(line)))
	require.NoError(t, err)

	// o acento do cabeçalho é descartado na normalização; o da célula não
	require.Len(t, table.rows, 1)
	assert.Equal(t, "Sepse grave é rara", table.get(table.rows[0], "DIAGNSTICO"))
	assert.Equal(t, "101", table.get(table.rows[0], "CO_CADERNO"))
}

func TestReadCSVToleratesRaggedRows(t *testing.T) {
	// linhas com menos campos que o cabeçalho não derrubam a ingestão:
	// as colunas ausentes saem vazias
	raw := "A;B;C\n1;2;3\n4;5\n"

	table, err := readCSV(strings.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, table.rows, 2)
	assert.Equal(t, "3", table.get(table.rows[0], "C"))
	assert.Equal(t, "", table.get(table.rows[1], "C"))
}

func TestGetNBuildsVectorColumnNames(t *testing.T) {
	header := make([]string, 0, 101)
	header = append(header, "CO_CADERNO")
	row := make([]string, 0, 101)
	row = append(row, "7")
	letters := []string{"A", "B", "C", "D"}
	for n := 1; n <= 100; n++ {
		header = append(header, "DS_VT_GAB_OBJ."+strconv.Itoa(n))
		row = append(row, letters[(n-1)%len(letters)])
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header, ";"))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(row, ";"))
	sb.WriteString("\n")

	table, err := readCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, table.rows, 1)

	assert.Equal(t, "A", table.getN(table.rows[0], "DS_VT_GAB_OBJ", 1))
	assert.Equal(t, "D", table.getN(table.rows[0], "DS_VT_GAB_OBJ", 100))
}

func TestDiagnosticoColumnAcceptsAccentedHeader(t *testing.T) {
	enc := charmap.ISO8859_1.NewEncoder()
	raw, err := enc.String("CO_CADERNO;NU_QUESTAO;DIAGNÓSTICO\n101;1;IAM\n")
	require.NoError(t, err)

	table, err := readCSV(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)
	require.Len(t, table.rows, 1)

	assert.Equal(t, "IAM", diagnosticoColumn(table, table.rows[0]))
}

func TestDiagnosticoColumnPrefersPlainHeader(t *testing.T) {
	raw := "CO_CADERNO;NU_QUESTAO;DIAGNOSTICO\n101;1;Sepse\n"

	table, err := readCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, table.rows, 1)

	assert.Equal(t, "Sepse", diagnosticoColumn(table, table.rows[0]))
}

func TestFirstByteFallback(t *testing.T) {
	assert.Equal(t, byte('A'), firstByte("A", 'X'))
	assert.Equal(t, byte('X'), firstByte("", 'X'))
	assert.Equal(t, byte('*'), firstByte("*anulada", 'X'))
}

func TestNormalizeHeaderStripsBOMAndCase(t *testing.T) {
	assert.Equal(t, "NU_ANO", normalizeHeader("\uFEFFnu_ano "))
	assert.Equal(t, "DIAGNSTICO", normalizeHeader("Diagnóstico"))
}
