package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/calibration"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #region helpers

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "tutor_test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// #endregion

// #region calibration-persistence

func TestSaveAndLoadCalibration(t *testing.T) {
	s := tempStore(t)

	res := calibration.Result{
		TotalScore: 25,
		Persona:    persona.FastLearner,
		Responses: map[string]string{
			"experience":          "20_plus",
			"pattern_recognition": "definitely",
			"timeline":            "this_week",
		},
	}

	id, err := s.SaveCalibration("user-1", "two_pointers", res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated result id")
	}

	got, err := s.LatestCalibration("user-1", "two_pointers")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalScore != 25 || got.Persona != persona.FastLearner {
		t.Errorf("got score=%d persona=%s", got.TotalScore, got.Persona)
	}
	if got.Responses["experience"] != "20_plus" {
		t.Errorf("responses round-trip broken: %v", got.Responses)
	}
	if got.Guidance.PacePreference != persona.PaceRapid {
		t.Errorf("guidance should be rehydrated from the persona, got %+v", got.Guidance)
	}
}

func TestLatestCalibrationMostRecentWins(t *testing.T) {
	s := tempStore(t)

	first := calibration.Result{TotalScore: 5, Persona: persona.StrugglingLearner,
		Responses: map[string]string{"experience": "under_5"}}
	if _, err := s.SaveCalibration("user-2", "sliding_window", first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	// Retake with a higher score; the later row must win.
	time.Sleep(5 * time.Millisecond)
	second := calibration.Result{TotalScore: 15, Persona: persona.BalancedLearner,
		Responses: map[string]string{"experience": "5_to_20"}}
	if _, err := s.SaveCalibration("user-2", "sliding_window", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := s.LatestCalibration("user-2", "sliding_window")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalScore != 15 || got.Persona != persona.BalancedLearner {
		t.Errorf("expected the retake to win, got score=%d persona=%s", got.TotalScore, got.Persona)
	}
}

func TestLatestCalibrationMissing(t *testing.T) {
	s := tempStore(t)
	_, err := s.LatestCalibration("nobody", "two_pointers")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCalibrationScopedPerPattern(t *testing.T) {
	s := tempStore(t)

	res := calibration.Result{TotalScore: 10, Persona: persona.BalancedLearner,
		Responses: map[string]string{}}
	if _, err := s.SaveCalibration("user-3", "two_pointers", res); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := s.LatestCalibration("user-3", "sliding_window"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("calibration must not leak across patterns, got %v", err)
	}
}

// #endregion

// #region interaction-log

func TestRecordAndListInteractions(t *testing.T) {
	s := tempStore(t)

	for i, kind := range []string{"assess", "guide", "chat"} {
		err := s.RecordInteraction(InteractionRecord{
			UserID:       "user-4",
			PatternID:    "two_pointers",
			Kind:         kind,
			StepID:       i + 1,
			Persona:      string(persona.BalancedLearner),
			InputTokens:  100,
			OutputTokens: 50,
			CostEstimate: 0.001,
			LatencyMS:    800,
			QualityScore: 1.0,
		})
		if err != nil {
			t.Fatalf("record %s: %v", kind, err)
		}
	}

	records, err := s.RecentInteractions(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Kind != "chat" {
		t.Errorf("expected newest first, got %s", records[0].Kind)
	}
	if records[0].InteractionID == "" {
		t.Error("interaction id should be generated when absent")
	}
	if records[0].ErrorKind != "" {
		t.Errorf("success rows should read back an empty error kind, got %q", records[0].ErrorKind)
	}
}

func TestRecordInteractionWithErrorKind(t *testing.T) {
	s := tempStore(t)

	err := s.RecordInteraction(InteractionRecord{
		UserID:    "user-5",
		PatternID: "two_pointers",
		Kind:      "chat",
		Persona:   string(persona.BalancedLearner),
		ErrorKind: "transient_network",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	records, err := s.RecentInteractions(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if records[0].ErrorKind != "transient_network" {
		t.Errorf("error kind round-trip broken: %q", records[0].ErrorKind)
	}
}

// #endregion

// #region spend

func TestMonthlySpendAndPolicy(t *testing.T) {
	s := tempStore(t)

	for i := 0; i < 3; i++ {
		err := s.RecordInteraction(InteractionRecord{
			UserID:       "user-6",
			PatternID:    "two_pointers",
			Kind:         "guide",
			Persona:      string(persona.BalancedLearner),
			CostEstimate: 0.50,
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	spent, err := s.MonthlySpend("user-6")
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if spent < 1.49 || spent > 1.51 {
		t.Errorf("spend = %v, want 1.50", spent)
	}

	// Other users' spend must not count.
	other, err := s.MonthlySpend("someone-else")
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if other != 0 {
		t.Errorf("other user spend = %v, want 0", other)
	}

	ctx := context.Background()

	under := NewSpendPolicy(s, 5.0)
	if ok, err := under.CheckBudget(ctx, "user-6"); err != nil || !ok {
		t.Errorf("under cap: ok=%v err=%v", ok, err)
	}

	over := NewSpendPolicy(s, 1.0)
	if ok, err := over.CheckBudget(ctx, "user-6"); err != nil || ok {
		t.Errorf("over cap should deny: ok=%v err=%v", ok, err)
	}

	disabled := NewSpendPolicy(s, 0)
	if ok, err := disabled.CheckBudget(ctx, "user-6"); err != nil || !ok {
		t.Errorf("zero cap disables enforcement: ok=%v err=%v", ok, err)
	}
}

// #endregion
