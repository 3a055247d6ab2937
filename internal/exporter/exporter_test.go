package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrock/minelines/internal/dashboard"
	"github.com/goldrock/minelines/internal/sheet"
)

func fixture() []*sheet.Record {
	grid := sheet.Grid{
		{"line_id", "line_name", "location", "material_moved_m3", "gold_grams", "gold_price_usd_per_g", "diesel_cost_usd", "labour_cost_usd", "other_cost_usd"},
		{"L1", "Line One", "Pit A", "100", "5", "60", "50", "30", "20"},
	}

	records := sheet.Materialize(grid)
	dashboard.EnrichAll(records)

	return records
}

func TestWriteJSONFile(t *testing.T) {
	records := fixture()
	doc := dashboard.Group(records)

	file := filepath.Join(t.TempDir(), "dist", "data.json")
	require.NoError(t, WriteJSONFile(file, doc))

	b, err := os.ReadFile(file)
	require.NoError(t, err)

	expected := `{"lines":[{"line_id":"L1","line_name":"Line One","location":"Pit A",
		"records":[{"line_id":"L1","line_name":"Line One","location":"Pit A",
		"material_moved_m3":"100","gold_grams":"5","gold_price_usd_per_g":"60",
		"diesel_cost_usd":"50","labour_cost_usd":"30","other_cost_usd":"20",
		"avg_grade_g_per_m3":0.05,"revenue_usd":300,"total_cost_usd":100,"profit_usd":200}]}]}`

	assert.JSONEq(t, expected, string(b))
}

func TestWriteJSONFileReplacesExisting(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(file, []byte("stale"), 0660))

	doc := dashboard.Group(nil)
	require.NoError(t, WriteJSONFile(file, doc))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[]}`, string(b))
}

func TestWriteTSV(t *testing.T) {
	records := fixture()

	var b bytes.Buffer
	require.NoError(t, WriteTSV(&b, records))

	expected := "line_id\tline_name\tlocation\tmaterial_moved_m3\tgold_grams\tgold_price_usd_per_g\tdiesel_cost_usd\tlabour_cost_usd\tother_cost_usd\tavg_grade_g_per_m3\trevenue_usd\ttotal_cost_usd\tprofit_usd\n" +
		"L1\tLine One\tPit A\t100\t5\t60\t50\t30\t20\t0.050\t300.00\t100.00\t200.00\n"

	assert.Equal(t, expected, b.String())
}

func TestWriteTSVNoRecords(t *testing.T) {
	var b bytes.Buffer

	require.NoError(t, WriteTSV(&b, nil))
	assert.Empty(t, b.String())
}

func TestWriteTSVFile(t *testing.T) {
	records := fixture()

	file := filepath.Join(t.TempDir(), "exports", "lines.tsv")
	require.NoError(t, WriteTSVFile(file, records))

	var expected bytes.Buffer
	require.NoError(t, WriteTSV(&expected, records))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, expected.String(), string(b))
}
