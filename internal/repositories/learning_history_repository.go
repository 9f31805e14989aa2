package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ktgenius/learning-assistant/internal/models"
)

type learningHistoryRepository struct {
	db *sql.DB
}

// NewLearningHistoryRepository creates a new learning history repository
func NewLearningHistoryRepository(db *sql.DB) *learningHistoryRepository {
	return &learningHistoryRepository{
		db: db,
	}
}

// GetUserLearningHistory retrieves the full course history for a learner.
// Completed records surface first (status descending), then lower levels
// before higher ones; the analyzer relies on this ordering.
func (r *learningHistoryRepository) GetUserLearningHistory(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	query := `
		SELECT
			c.cont_id,
			c.cont_title,
			c.cont_desc,
			c.cont_lvl,
			c.cont_ctg_cd,
			cu.educ_sts_cd
		FROM tb_cont c
		JOIN tb_cont_user cu ON c.cont_id = cu.cont_id
		WHERE cu.user_id = ?
		ORDER BY cu.educ_sts_cd DESC, c.cont_lvl
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query learning history: %w", err)
	}
	defer rows.Close()

	var history []models.ProgressRecord
	for rows.Next() {
		var record models.ProgressRecord
		var levelCode string
		err := rows.Scan(
			&record.ID,
			&record.Title,
			&record.Description,
			&levelCode,
			&record.Category,
			&record.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan learning history record: %w", err)
		}
		record.Level = models.ParseLevel(levelCode)
		history = append(history, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return history, nil
}
