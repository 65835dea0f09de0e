package output

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"

	"github.com/sellerstack/crosslist/pkg/catalog"
	"github.com/sellerstack/crosslist/pkg/publish"
)

// ItemsData builds a table of canonical items. Wide adds the identity
// and image columns.
func ItemsData(items []catalog.Item, wide bool) Data {
	headers := []string{header("name"), header("sku"), header("status"), header("price"), header("stock")}
	if wide {
		headers = append(headers, header("categories"), header("identity"))
	}

	data := Data{
		Headers: headers,
		Alignment: []tw.Align{
			tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight,
		},
	}

	for _, item := range items {
		stock := "-"
		if item.StockQuantity != nil {
			stock = strconv.Itoa(*item.StockQuantity)
		}
		row := []string{item.Name, item.SKU, item.Status, item.Price, stock}
		if wide {
			row = append(row, item.JoinedCategories(), item.Identity)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// ReconcileData builds a table of the listings that need publishing.
func ReconcileData(result catalog.Result, wide bool) Data {
	return ItemsData(result.NeedsPublishing, wide)
}

// ReportData builds a per-item table of publish outcomes.
func ReportData(report publish.Report) Data {
	data := Data{
		Headers: []string{header("name"), header("result"), header("detail")},
	}
	for _, outcome := range report.Outcomes {
		result := "published"
		if !outcome.Succeeded {
			result = "failed"
		}
		data.Rows = append(data.Rows, []string{outcome.Item.Name, result, outcome.ErrorDetail})
	}
	return data
}
