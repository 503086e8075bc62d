package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"go.yaml.in/yaml/v3"
)

func sampleWorkbook() *models.WorkbookData {
	return &models.WorkbookData{
		BookName:   "problem2.xlsx",
		SheetOrder: []string{"Model"},
		Sheets: map[string]models.SheetData{
			"Model": {
				Rows: []models.CellRow{
					{R: 1, C: map[string]interface{}{"A": "Hour", "B": int64(8)}, F: map[string]string{"C": "=SUM(B1:B2)"}},
				},
				PrintAreas: []models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 3}},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, ".yaml", FormatYAML.Ext())
	assert.Equal(t, ".json", FormatJSON.Ext())
}

func TestToJSON(t *testing.T) {
	wb := sampleWorkbook()

	compact, err := ToJSON(wb, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
	assert.Contains(t, string(compact), `"f":{"C":"=SUM(B1:B2)"}`)

	pretty, err := ToJSON(wb, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\": \"problem2.xlsx\"")

	var back models.WorkbookData
	require.NoError(t, json.Unmarshal(pretty, &back))
	assert.Equal(t, []string{"Model"}, back.SheetOrder)
	assert.Equal(t, float64(8), back.Sheets["Model"].Rows[0].C["B"])
}

func TestToYAML(t *testing.T) {
	data, err := Marshal(sampleWorkbook(), FormatYAML, true)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "book_name: problem2.xlsx\n")
	assert.Contains(t, text, "print_areas:")

	var back map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, "problem2.xlsx", back["book_name"])
}
