package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []ReportRow{
	{Agent: "Fernández, María", Role: "Docente", AssetName: "Notebook", SerialNumber: "SN-300", Status: "active", Value: "2500.50"},
	{Agent: "Sin asignar", Role: "", AssetName: "Impresora", SerialNumber: "SN-301", Status: "in_repair", Value: "800.00"},
}

func TestAssetsByAgentCSVRoundTrips(t *testing.T) {
	data, err := AssetsByAgentCSV(sampleRows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Agente", "Rol", "Activo", "Nro. de serie", "Estado", "Valor"}, records[0])
	assert.Equal(t, []string{"Fernández, María", "Docente", "Notebook", "SN-300", "active", "2500.50"}, records[1])
	assert.Equal(t, "Sin asignar", records[2][0])
}

func TestAssetsByAgentCSVEmptyKeepsHeader(t *testing.T) {
	data, err := AssetsByAgentCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "Agente,Rol,Activo,Nro. de serie,Estado,Valor", lines[0])
}

func TestAssetsByAgentPDFHasDocumentHeader(t *testing.T) {
	data, err := AssetsByAgentPDF(sampleRows)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestAssetsByAgentPDFEmptyStillRenders(t *testing.T) {
	data, err := AssetsByAgentPDF(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestAssetsByAgentPDFManyRowsPaginates(t *testing.T) {
	rows := make([]ReportRow, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, sampleRows[0])
	}
	data, err := AssetsByAgentPDF(rows)
	require.NoError(t, err)
	// More rows than fit one landscape page must still produce a document
	assert.Greater(t, len(data), 2000)
}
