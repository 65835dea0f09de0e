package marketplace_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/internal/sources/marketplace"
	"github.com/sellerstack/crosslist/pkg/logging"
)

func TestReadBasicExport(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := strings.Join([]string{
		`Title,Description,Category,Price,SKU,Status,Images,Quantity Left`,
		`Blue Mug,A nice mug,Kitchen,12.50,MUG-1,Active,https://img.example/mug.jpg,3`,
		`Red Plate,,Kitchen,8,PLT-2,Sold,,0`,
	}, "\n")

	rows, stats, err := marketplace.Read(context.Background(), strings.NewReader(input), "listings.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.RowsSeen)
	assert.Equal(t, 2, stats.RowsParsed)
	require.Len(t, rows, 2)

	assert.Equal(t, "Blue Mug", rows[0].Title)
	assert.Equal(t, "A nice mug", rows[0].Description)
	assert.Equal(t, "Kitchen", rows[0].Category)
	assert.Equal(t, "12.50", rows[0].Price)
	assert.Equal(t, "MUG-1", rows[0].SKU)
	assert.Equal(t, "Active", rows[0].Status)
	assert.Equal(t, "https://img.example/mug.jpg", rows[0].Images)
	assert.Equal(t, "3", rows[0].QuantityLeft)

	assert.Equal(t, "Sold", rows[1].Status)
	assert.Equal(t, "0", rows[1].QuantityLeft)
}

func TestReadStripsUTF8BOM(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := "\ufeffTitle,Status\nBlue Mug,Active\n"

	rows, stats, err := marketplace.Read(context.Background(), strings.NewReader(input), "bom.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, stats.RowsParsed)
	assert.Equal(t, "Blue Mug", rows[0].Title)
}

func TestReadSkipsMalformedRows(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := strings.Join([]string{
		`Title,Price,Status`,
		`Blue Mug,12.50,Active`,
		`Broken Row,9.99`, // short record
		`Red Plate,8.00,Active`,
	}, "\n")

	rows, stats, err := marketplace.Read(context.Background(), strings.NewReader(input), "listings.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.RowsSeen)
	assert.Equal(t, 2, stats.RowsParsed)
	require.Len(t, rows, 2)
	assert.Equal(t, "Blue Mug", rows[0].Title)
	assert.Equal(t, "Red Plate", rows[1].Title)
}

func TestReadMissingColumnsDefaultEmpty(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := "Title\nBlue Mug\n"

	rows, _, err := marketplace.Read(context.Background(), strings.NewReader(input), "minimal.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Blue Mug", rows[0].Title)
	assert.Empty(t, rows[0].Description)
	assert.Empty(t, rows[0].Price)
	assert.Empty(t, rows[0].Status)
	assert.Empty(t, rows[0].QuantityLeft)
}

func TestReadIgnoresUnrecognizedColumns(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := strings.Join([]string{
		`Title,Brand,Condition,Status`,
		`Blue Mug,Acme,Used,Active`,
	}, "\n")

	rows, _, err := marketplace.Read(context.Background(), strings.NewReader(input), "extra.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Blue Mug", rows[0].Title)
	assert.Equal(t, "Active", rows[0].Status)
}

func TestReadEmptyInput(t *testing.T) {
	logging.DisableLoggingForTest(t)

	rows, stats, err := marketplace.Read(context.Background(), strings.NewReader(""), "empty.csv")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, marketplace.ParseStats{}, stats)
}

func TestReadFileMissing(t *testing.T) {
	logging.DisableLoggingForTest(t)

	_, _, err := marketplace.ReadFile(context.Background(), "/nonexistent/listings.csv")
	assert.Error(t, err)
}
