package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"bevctl/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const catalogJSON = `[
	{"id":1,"type":"bottle","name":"Cola","price":2},
	{"id":2,"type":"crate","bottle":{"name":"Beer","volume":0.5,"isAlcoholic":true},"noOfBottles":12,"price":20},
	{"id":3,"type":"bottle","name":"Water","price":1.5,"supplier":"Spring, Inc."}
]`

func partition(t *testing.T) catalog.Partition {
	t.Helper()
	items, err := catalog.DecodeCollection([]byte(catalogJSON))
	require.NoError(t, err)
	return catalog.PartitionItems(items)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "out.csv", want: FormatCSV},
		{path: "dir/Catalog.XLSX", want: FormatXLSX},
		{path: "out.json", wantErr: true},
		{path: "out", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, partition(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"id", "type", "summary", "name", "price", "supplier", "bottle", "noOfBottles"}, records[0])
	assert.Equal(t, []string{"1", "bottle", "Cola - $2", "Cola", "2", "", "", ""}, records[1])
	assert.Equal(t, []string{"3", "bottle", "Water - $1.5", "Water", "1.5", "Spring, Inc.", "", ""}, records[2])
	assert.Equal(t, []string{
		"2", "crate", "Crate of Beer, 0.5L, Alcoholic (12 bottles) - $20", "", "20", "",
		`{"name":"Beer","volume":0.5,"isAlcoholic":true}`, "12",
	}, records[3])
}

func TestWriteCSV_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, catalog.PartitionItems(nil)))
	assert.Equal(t, "id,type,summary\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, partition(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetBottles, SheetCrates}, f.GetSheetList())

	bottles, err := f.GetRows(SheetBottles)
	require.NoError(t, err)
	require.Len(t, bottles, 3)
	assert.Equal(t, []string{"id", "type", "summary", "name", "price", "supplier"}, bottles[0])
	assert.Equal(t, []string{"1", "bottle", "Cola - $2", "Cola", "2"}, bottles[1])
	assert.Equal(t, "Spring, Inc.", bottles[2][5])

	crates, err := f.GetRows(SheetCrates)
	require.NoError(t, err)
	require.Len(t, crates, 2)
	assert.Equal(t, []string{"id", "type", "summary", "bottle", "noOfBottles", "price"}, crates[0])
	assert.Equal(t, `{"name":"Beer","volume":0.5,"isAlcoholic":true}`, crates[1][3])
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "catalog.csv")
	require.NoError(t, ToFile(csvPath, partition(t)))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Cola - $2")

	xlsxPath := filepath.Join(dir, "catalog.xlsx")
	require.NoError(t, ToFile(xlsxPath, partition(t)))
	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	assert.NoError(t, f.Close())

	assert.Error(t, ToFile(filepath.Join(dir, "catalog.txt"), partition(t)))
	_, err = os.Stat(filepath.Join(dir, "catalog.txt"))
	assert.True(t, os.IsNotExist(err), "nothing is created for an unsupported format")
}
