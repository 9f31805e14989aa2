package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ktgenius/learning-assistant/internal/models"
)

// recommendationLimit caps how many courses a single recommendation query returns
const recommendationLimit = 3

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetRecommended retrieves up to 3 courses in a category at a level.
// excludeIDs is optional; when non-empty those course IDs are withheld
// because the learner has already encountered them.
func (r *courseRepository) GetRecommended(ctx context.Context, category string, level models.Level, excludeIDs []string) ([]models.Course, error) {
	args := []any{category, level}

	excludeClause := ""
	if len(excludeIDs) > 0 {
		placeholders := make([]string, len(excludeIDs))
		for i, id := range excludeIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		excludeClause = fmt.Sprintf("AND cont_id NOT IN (%s)", strings.Join(placeholders, ", "))
	}

	args = append(args, recommendationLimit)

	query := fmt.Sprintf(`
		SELECT cont_id, cont_title, cont_desc, cont_lvl, cont_ctg_cd
		FROM tb_cont
		WHERE cont_ctg_cd = ? AND cont_lvl = ? %s
		LIMIT ?
	`, excludeClause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommended courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		var levelCode string
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&levelCode,
			&course.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		course.Level = models.ParseLevel(levelCode)
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetOtherCategories retrieves up to 3 category codes other than the given one
func (r *courseRepository) GetOtherCategories(ctx context.Context, excludeCategory string) ([]string, error) {
	query := `
		SELECT DISTINCT cont_ctg_cd
		FROM tb_cont
		WHERE cont_ctg_cd != ?
		LIMIT 3
	`

	rows, err := r.db.QueryContext(ctx, query, excludeCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}
