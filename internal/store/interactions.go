package store

// #region imports
import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// #endregion

// #region interaction-record

// InteractionRecord is one row of the interaction log: what the engine did,
// what it cost, and how it went. Mirrors the metadata the facade returns.
type InteractionRecord struct {
	InteractionID string
	UserID        string
	PatternID     string
	Kind          string
	StepID        int
	Persona       string
	InputTokens   int
	OutputTokens  int
	CostEstimate  float64
	LatencyMS     int64
	QualityScore  float32
	ErrorKind     string // empty on success
	CreatedAt     time.Time
}

// #endregion

// #region record-interaction

// RecordInteraction appends one row to the interaction log.
func (s *Store) RecordInteraction(rec InteractionRecord) error {
	if rec.InteractionID == "" {
		rec.InteractionID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	var errKind interface{}
	if rec.ErrorKind != "" {
		errKind = rec.ErrorKind
	}

	_, err := s.db.Exec(
		`INSERT INTO interaction_log
		 (interaction_id, user_id, pattern_id, kind, step_id, persona,
		  input_tokens, output_tokens, cost_estimate, latency_ms, quality_score, error_kind, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InteractionID, rec.UserID, rec.PatternID, rec.Kind, rec.StepID, rec.Persona,
		rec.InputTokens, rec.OutputTokens, rec.CostEstimate, rec.LatencyMS, rec.QualityScore,
		errKind, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// #endregion record-interaction

// #region recent-interactions

// RecentInteractions returns the most recent interaction rows.
func (s *Store) RecentInteractions(limit int) ([]InteractionRecord, error) {
	rows, err := s.db.Query(
		`SELECT interaction_id, user_id, pattern_id, kind, step_id, persona,
		        input_tokens, output_tokens, cost_estimate, latency_ms, quality_score,
		        COALESCE(error_kind, ''), created_at
		 FROM interaction_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent interactions: %w", err)
	}
	defer rows.Close()

	var records []InteractionRecord
	for rows.Next() {
		var rec InteractionRecord
		var createdStr string
		if err := rows.Scan(
			&rec.InteractionID, &rec.UserID, &rec.PatternID, &rec.Kind, &rec.StepID, &rec.Persona,
			&rec.InputTokens, &rec.OutputTokens, &rec.CostEstimate, &rec.LatencyMS, &rec.QualityScore,
			&rec.ErrorKind, &createdStr,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion recent-interactions

// #region monthly-spend

// MonthlySpend sums the cost estimates for a user since the start of the
// current calendar month (UTC).
func (s *Store) MonthlySpend(userID string) (float64, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var total float64
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(cost_estimate), 0) FROM interaction_log
		 WHERE user_id = ? AND created_at >= ?`,
		userID, monthStart.Format(time.RFC3339Nano),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("monthly spend: %w", err)
	}
	return total, nil
}

// #endregion monthly-spend

// #region spend-policy

// SpendPolicy enforces a monthly per-user cost cap against the interaction
// log. Implements the engine's BudgetPolicy interface.
type SpendPolicy struct {
	store  *Store
	capUSD float64
}

// NewSpendPolicy creates a policy with the given monthly cap in USD.
// A cap of zero or less disables enforcement.
func NewSpendPolicy(store *Store, capUSD float64) *SpendPolicy {
	return &SpendPolicy{store: store, capUSD: capUSD}
}

// CheckBudget reports whether the user is under their monthly cap.
func (p *SpendPolicy) CheckBudget(_ context.Context, userID string) (bool, error) {
	if p.capUSD <= 0 {
		return true, nil
	}
	spent, err := p.store.MonthlySpend(userID)
	if err != nil {
		return false, err
	}
	return spent < p.capUSD, nil
}

// #endregion spend-policy
