package scoreboard

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markerColumn identifies the score table: its header row contains a
// sequential row-number column labeled "#".
const markerColumn = "#"

// scoreColumn is the header of the overall score column.
const scoreColumn = "Score"

// Extract locates the unique score table and converts it into raw rows,
// keeping only the score column and the configured phase columns. The
// row-number and date columns are dropped. Row order follows the document.
func Extract(html string, phaseNames []string) ([]RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("parsing HTML: %v", err)}
	}

	var tables []*goquery.Selection
	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		if hasMarkerColumn(sel) {
			tables = append(tables, sel)
		}
	})

	switch len(tables) {
	case 0:
		return nil, &ParseError{Reason: fmt.Sprintf("no table with a %q column found", markerColumn)}
	case 1:
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("ambiguous scoreboard: %d tables with a %q column", len(tables), markerColumn)}
	}

	headers := cellTexts(tables[0].Find("tr").First())

	scoreIdx := -1
	phaseIdx := make([]int, len(phaseNames))
	for i := range phaseIdx {
		phaseIdx[i] = -1
	}
	for i, h := range headers {
		if h == scoreColumn && scoreIdx < 0 {
			scoreIdx = i
		}
		for j, name := range phaseNames {
			if h == name && phaseIdx[j] < 0 {
				phaseIdx[j] = i
			}
		}
	}
	if scoreIdx < 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("score table has no %q column", scoreColumn)}
	}
	for j, idx := range phaseIdx {
		if idx < 0 {
			return nil, &ParseError{Reason: fmt.Sprintf("score table has no %q column", phaseNames[j])}
		}
	}

	var rows []RawRow
	var rowErr error
	tables[0].Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 || rowErr != nil {
			return
		}
		cells := cellTexts(tr)
		if len(cells) <= scoreIdx {
			rowErr = &ParseError{Reason: rowError(i-1, "has %d cells, need at least %d", len(cells), scoreIdx+1)}
			return
		}
		row := RawRow{
			PhaseCells: make([]string, len(phaseIdx)),
			ScoreCell:  cells[scoreIdx],
		}
		for j, idx := range phaseIdx {
			if len(cells) <= idx {
				rowErr = &ParseError{Reason: rowError(i-1, "has %d cells, need at least %d", len(cells), idx+1)}
				return
			}
			row.PhaseCells[j] = cells[idx]
		}
		rows = append(rows, row)
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}

// hasMarkerColumn reports whether the table's header row contains the
// row-number marker column.
func hasMarkerColumn(table *goquery.Selection) bool {
	for _, h := range cellTexts(table.Find("tr").First()) {
		if h == markerColumn {
			return true
		}
	}
	return false
}

// cellTexts returns the trimmed text of every th/td cell in a row.
func cellTexts(tr *goquery.Selection) []string {
	var texts []string
	tr.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
