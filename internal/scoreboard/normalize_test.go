package scoreboard

import (
	"errors"
	"testing"

	"github.com/kaitosekiya/attacklab-stats/internal/config"
)

var testPhase = config.Phase{Name: "Phase 4", Points: "35", PenalizedPoints: "29.75"}

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCategory Category
		wantLabel    string
	}{
		{"full credit", "35", CategoryFullCredit, "35"},
		{"full credit with trailing zero", "35.0", CategoryFullCredit, "35"},
		{"zero", "0", CategoryZero, "0"},
		{"zero with trailing zero", "0.0", CategoryZero, "0"},
		{"penalized", "29.75", CategoryPenalized, "Penalized"},
		{"penalized trailing zero", "29.750", CategoryPenalized, "Penalized"},
		{"too late", "Too Late", CategoryTooLate, "Too Late"},
		{"invalid", "Invalid", CategoryInvalid, "Invalid"},
		{"unconfigured value", "12.5", CategoryUnknown, "12.5"},
		{"unexpected text", "DNF", CategoryUnknown, "DNF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeCell(tt.raw, testPhase)
			if got.Category != tt.wantCategory {
				t.Errorf("normalizeCell(%q) category = %v, expected %v", tt.raw, got.Category, tt.wantCategory)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("normalizeCell(%q) label = %q, expected %q", tt.raw, got.Label, tt.wantLabel)
			}
		})
	}
}

func TestNormalizeCellWholePenalty(t *testing.T) {
	// A whole-number penalty value such as Phase 5's 17 may be rendered
	// as "17" or "17.0"; both must classify as Penalized, never as the
	// raw numeric text.
	phase := config.Phase{Name: "Phase 5", Points: "20", PenalizedPoints: "17"}
	for _, raw := range []string{"17", "17.0"} {
		got := normalizeCell(raw, phase)
		if got.Category != CategoryPenalized {
			t.Errorf("normalizeCell(%q) category = %v, expected Penalized", raw, got.Category)
		}
	}
}

func TestNormalize(t *testing.T) {
	phases := []config.Phase{
		{Name: "Phase 1", Points: "15", PenalizedPoints: "12.75"},
		{Name: "Phase 2", Points: "25", PenalizedPoints: "21.25"},
	}

	raw := []RawRow{
		{PhaseCells: []string{"15", "21.25"}, ScoreCell: "36.25"},
		{PhaseCells: []string{"0", "Too Late"}, ScoreCell: "0.0"},
	}

	rows, err := Normalize(raw, phases)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if rows[0].Score != 36.25 {
		t.Errorf("row 0 score = %v, expected 36.25", rows[0].Score)
	}
	if rows[0].Phases[0].Category != CategoryFullCredit {
		t.Errorf("row 0 phase 1 = %v, expected FullCredit", rows[0].Phases[0].Category)
	}
	if rows[0].Phases[1].Category != CategoryPenalized {
		t.Errorf("row 0 phase 2 = %v, expected Penalized", rows[0].Phases[1].Category)
	}
	if rows[1].Score != 0 {
		t.Errorf("row 1 score = %v, expected 0", rows[1].Score)
	}
	if rows[1].Phases[1].Category != CategoryTooLate {
		t.Errorf("row 1 phase 2 = %v, expected TooLate", rows[1].Phases[1].Category)
	}
}

func TestNormalizeBadScore(t *testing.T) {
	phases := []config.Phase{{Name: "Phase 1", Points: "15", PenalizedPoints: "12.75"}}
	raw := []RawRow{{PhaseCells: []string{"15"}, ScoreCell: "n/a"}}

	_, err := Normalize(raw, phases)
	if err == nil {
		t.Fatal("expected error for non-numeric score, got nil")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestNormalizePhaseCountMismatch(t *testing.T) {
	phases := []config.Phase{{Name: "Phase 1", Points: "15", PenalizedPoints: "12.75"}}
	raw := []RawRow{{PhaseCells: []string{"15", "25"}, ScoreCell: "40"}}

	_, err := Normalize(raw, phases)
	if err == nil {
		t.Fatal("expected error for phase cell count mismatch, got nil")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}
