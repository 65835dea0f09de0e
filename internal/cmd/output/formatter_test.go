package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/internal/cmd/output"
	"github.com/sellerstack/crosslist/pkg/catalog"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "wide", "JSON", ""} {
		_, err := output.ParseFormat(valid)
		assert.NoError(t, err, "format %q", valid)
	}

	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatJSON)

	result := catalog.Result{MatchedCount: 2, NeedsPublishing: []catalog.Item{{Name: "Blue Mug"}}}
	require.NoError(t, formatter.Format(&buf, result))

	var decoded catalog.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.MatchedCount)
	require.Len(t, decoded.NeedsPublishing, 1)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatYAML)

	require.NoError(t, formatter.Format(&buf, map[string]int{"matched": 3}))
	assert.Contains(t, buf.String(), "matched: 3")
}

func TestTableFormatterRendersData(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatTable)

	data := output.ItemsData([]catalog.Item{
		{Name: "Blue Mug", SKU: "MUG-1", Status: "Active", Price: "12.5"},
	}, false)
	require.NoError(t, formatter.Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "Blue Mug")
	assert.Contains(t, out, "MUG-1")
	assert.Contains(t, out, "Name")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatTable)

	require.NoError(t, formatter.Format(&buf, map[string]string{"key": "value"}))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestItemsDataWide(t *testing.T) {
	quantity := 3
	items := []catalog.Item{{
		Name:          "Blue Mug",
		Identity:      catalog.Identity("Blue Mug"),
		Categories:    []string{"Kitchen", "Ceramics"},
		StockQuantity: &quantity,
	}}

	narrow := output.ItemsData(items, false)
	wide := output.ItemsData(items, true)

	assert.Len(t, narrow.Headers, 5)
	assert.Len(t, wide.Headers, 7)
	assert.Contains(t, wide.Rows[0], "Kitchen, Ceramics")
	assert.Contains(t, wide.Rows[0], catalog.Identity("Blue Mug"))
	assert.Contains(t, narrow.Rows[0], "3")
}
