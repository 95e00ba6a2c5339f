package scoreboard

import (
	"errors"
	"os"
	"testing"
)

var testPhaseNames = []string{"Phase 1", "Phase 2", "Phase 3", "Phase 4", "Phase 5"}

func TestExtractFixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/scoreboard.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	rows, err := Extract(string(data), testPhaseNames)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Row order follows the document.
	wantScores := []string{"100.0", "50.0", "0.0"}
	for i, want := range wantScores {
		if rows[i].ScoreCell != want {
			t.Errorf("row %d score cell = %q, expected %q", i, rows[i].ScoreCell, want)
		}
		if len(rows[i].PhaseCells) != len(testPhaseNames) {
			t.Errorf("row %d has %d phase cells, expected %d", i, len(rows[i].PhaseCells), len(testPhaseNames))
		}
	}

	if rows[0].PhaseCells[3] != "29.75" {
		t.Errorf("row 0 phase 4 cell = %q, expected %q", rows[0].PhaseCells[3], "29.75")
	}
	if rows[1].PhaseCells[3] != "Too Late" {
		t.Errorf("row 1 phase 4 cell = %q, expected %q", rows[1].PhaseCells[3], "Too Late")
	}
	if rows[1].PhaseCells[4] != "Invalid" {
		t.Errorf("row 1 phase 5 cell = %q, expected %q", rows[1].PhaseCells[4], "Invalid")
	}
}

func TestExtractErrors(t *testing.T) {
	const scoreTable = `<table>
<tr><th>#</th><th>Score</th><th>Phase 1</th></tr>
<tr><td>1</td><td>15</td><td>15</td></tr>
</table>`

	tests := []struct {
		name   string
		html   string
		phases []string
	}{
		{
			name:   "no table",
			html:   "<html><body><p>nothing tabular</p></body></html>",
			phases: []string{"Phase 1"},
		},
		{
			name:   "no marker column",
			html:   "<html><body><table><tr><th>Name</th><th>Score</th></tr></table></body></html>",
			phases: []string{"Phase 1"},
		},
		{
			name:   "ambiguous tables",
			html:   "<html><body>" + scoreTable + scoreTable + "</body></html>",
			phases: []string{"Phase 1"},
		},
		{
			name:   "missing score column",
			html:   "<html><body><table><tr><th>#</th><th>Phase 1</th></tr></table></body></html>",
			phases: []string{"Phase 1"},
		},
		{
			name:   "missing phase column",
			html:   "<html><body>" + scoreTable + "</body></html>",
			phases: []string{"Phase 1", "Phase 2"},
		},
		{
			name:   "short row",
			html:   "<html><body><table><tr><th>#</th><th>Score</th><th>Phase 1</th></tr><tr><td>1</td></tr></table></body></html>",
			phases: []string{"Phase 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.html, tt.phases)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestExtractSingleTable(t *testing.T) {
	// A second table without the marker column must not make the
	// scoreboard ambiguous.
	html := `<html><body>
<table><tr><th>Link</th></tr><tr><td>home</td></tr></table>
<table>
<tr><th>#</th><th>Score</th><th>Phase 1</th></tr>
<tr><td>1</td><td>15.0</td><td>15</td></tr>
<tr><td>2</td><td>0.0</td><td>0</td></tr>
</table>
</body></html>`

	rows, err := Extract(html, []string{"Phase 1"})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].PhaseCells[0] != "15" {
		t.Errorf("row 0 phase cell = %q, expected %q", rows[0].PhaseCells[0], "15")
	}
}
