package store

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/calibration"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS calibration_results (
	result_id     TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	pattern_id    TEXT NOT NULL,
	total_score   INTEGER NOT NULL,
	persona       TEXT NOT NULL,
	responses     TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calibration_lookup
ON calibration_results(user_id, pattern_id, created_at);

CREATE TABLE IF NOT EXISTS interaction_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	interaction_id TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	pattern_id    TEXT NOT NULL,
	kind          TEXT NOT NULL,
	step_id       INTEGER NOT NULL,
	persona       TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	cost_estimate REAL NOT NULL DEFAULT 0,
	latency_ms    INTEGER NOT NULL DEFAULT 0,
	quality_score REAL NOT NULL DEFAULT 0,
	error_kind    TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interaction_spend
ON interaction_log(user_id, created_at);
`

// #endregion schema

// #region store-struct

// Store persists calibration results and the interaction log in SQLite.
// It is the persistence collaborator the facade's callers use; the
// orchestration core itself never touches it.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// New opens a SQLite database and runs migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region save-calibration

// SaveCalibration inserts a calibration result. Retakes insert new rows;
// reads resolve most-recent-wins.
func (s *Store) SaveCalibration(userID, patternID string, res calibration.Result) (string, error) {
	respJSON, err := json.Marshal(res.Responses)
	if err != nil {
		return "", fmt.Errorf("marshal responses: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO calibration_results (result_id, user_id, pattern_id, total_score, persona, responses, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, userID, patternID, res.TotalScore, string(res.Persona), string(respJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert calibration: %w", err)
	}
	return id, nil
}

// #endregion save-calibration

// #region latest-calibration

// LatestCalibration returns the most recent calibration result for a
// user+pattern pair, or sql.ErrNoRows if none exists.
func (s *Store) LatestCalibration(userID, patternID string) (calibration.Result, error) {
	var totalScore int
	var personaStr, respJSON string

	err := s.db.QueryRow(
		`SELECT total_score, persona, responses FROM calibration_results
		 WHERE user_id = ? AND pattern_id = ?
		 ORDER BY created_at DESC LIMIT 1`,
		userID, patternID,
	).Scan(&totalScore, &personaStr, &respJSON)
	if err != nil {
		return calibration.Result{}, fmt.Errorf("latest calibration: %w", err)
	}

	responses := make(map[string]string)
	if err := json.Unmarshal([]byte(respJSON), &responses); err != nil {
		return calibration.Result{}, fmt.Errorf("unmarshal responses: %w", err)
	}

	p := persona.Type(personaStr)
	return calibration.Result{
		TotalScore: totalScore,
		Persona:    p,
		Responses:  responses,
		Guidance:   persona.Lookup(p).Guidance,
	}, nil
}

// #endregion latest-calibration
