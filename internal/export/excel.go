// Package export serializes picked articles to an .xlsx workbook.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/minafoods/newsclip/internal/logger"
	"github.com/minafoods/newsclip/internal/pipeline"
)

const SheetName = "뉴스클리핑"

var headers = []string{"그룹", "출처", "기사일자", "제목"}

// FileName builds the download name for a run, stamped with the reporting
// window's end date.
func FileName(end time.Time) string {
	return fmt.Sprintf("뉴스클리핑_%s.xlsx", end.Format("2006-01-02"))
}

// Write renders the records into a workbook and returns the file bytes.
// An empty record list still yields a valid workbook with the header row.
//
// Title cells are written as plain strings (so a title starting with "=" can
// never execute as a formula) and carry a direct hyperlink object to the
// article URL rather than a HYPERLINK formula, which quote characters in
// titles would corrupt.
func Write(records []pipeline.Article) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	linkStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "1265BE", Underline: "single"},
	})
	if err != nil {
		return nil, fmt.Errorf("create link style: %w", err)
	}

	for i, rec := range records {
		row := i + 2
		cells := []string{
			rec.Category,
			rec.Publisher,
			rec.Date.Format("2006-01-02"),
			rec.Title,
		}
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStr(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}

		titleCell, err := excelize.CoordinatesToCellName(len(headers), row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellHyperLink(SheetName, titleCell, rec.URL, "External"); err != nil {
			// Some aggregator URLs exceed the xlsx hyperlink length limit;
			// the row keeps its plain title text in that case.
			logger.Warn("hyperlink skipped", "url", rec.URL, "error", err)
			continue
		}
		if err := f.SetCellStyle(SheetName, titleCell, titleCell, linkStyle); err != nil {
			return nil, fmt.Errorf("style row %d: %w", row, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "C", 15); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "D", "D", 80); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
