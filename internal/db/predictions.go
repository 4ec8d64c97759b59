package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// maxStoredTextLength caps the resume text stored with each prediction.
const maxStoredTextLength = 1000

// PredictionRecord is one saved role prediction.
type PredictionRecord struct {
	ID             uuid.UUID `json:"id"`
	Filename       string    `json:"filename"`
	PredictedLabel string    `json:"predicted_label"`
	OriginalText   string    `json:"original_text"`
	UserEmail      string    `json:"user_email"`
	CreatedAt      time.Time `json:"created_at"`
}

// PredictionStore persists role predictions for the history view.
type PredictionStore interface {
	SavePrediction(ctx context.Context, filename, predictedLabel, originalText, userEmail string) error
	ListPredictions(ctx context.Context) ([]PredictionRecord, error)
}

// SavePrediction inserts a prediction record. The resume text is truncated
// to maxStoredTextLength before it reaches the database.
func (db *DB) SavePrediction(ctx context.Context, filename, predictedLabel, originalText, userEmail string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_predictions (filename, predicted_label, original_text, user_email)
		 VALUES ($1, $2, $3, $4)`,
		filename, predictedLabel, TruncateForStorage(originalText), userEmail,
	)
	if err != nil {
		return &PersistenceError{Op: "save prediction", Err: err}
	}
	return nil
}

// ListPredictions returns all prediction records, newest first.
func (db *DB) ListPredictions(ctx context.Context) ([]PredictionRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, predicted_label, original_text, user_email, created_at
		 FROM resume_predictions
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, &PersistenceError{Op: "list predictions", Err: err}
	}
	defer rows.Close()

	var records []PredictionRecord
	for rows.Next() {
		var r PredictionRecord
		if err := rows.Scan(&r.ID, &r.Filename, &r.PredictedLabel, &r.OriginalText, &r.UserEmail, &r.CreatedAt); err != nil {
			return nil, &PersistenceError{Op: "scan prediction", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list predictions", Err: err}
	}

	return records, nil
}

// TruncateForStorage limits text to the stored-text cap.
func TruncateForStorage(text string) string {
	if len(text) > maxStoredTextLength {
		return text[:maxStoredTextLength]
	}
	return text
}
