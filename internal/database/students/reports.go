package students

import (
	"fmt"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	DefaultTopLimit = 3
	MaxTopLimit     = 100
)

// Averages are rounded to one decimal in SQL so every consumer sees the same numbers.
const (
	studentAveragesQuery = `
		SELECT s.id AS student_id, s.name AS name,
		       COUNT(g.id) AS grade_count, ROUND(AVG(g.score), 1) AS average
		FROM students s
		LEFT JOIN grades g ON g.student_id = s.id
		GROUP BY s.id, s.name
		ORDER BY s.name COLLATE NOCASE, s.id`

	subjectAveragesQuery = `
		SELECT subject, COUNT(*) AS grade_count, ROUND(AVG(score), 1) AS average,
		       MIN(score) AS min_score, MAX(score) AS max_score
		FROM grades
		GROUP BY subject
		ORDER BY subject`

	topStudentsQuery = `
		SELECT s.id AS student_id, s.name AS name,
		       COUNT(g.id) AS grade_count, ROUND(AVG(g.score), 1) AS average
		FROM students s
		JOIN grades g ON g.student_id = s.id
		GROUP BY s.id, s.name
		ORDER BY AVG(g.score) DESC, s.name COLLATE NOCASE, s.id
		LIMIT ?`

	studentsBelowQuery = `
		SELECT s.id AS student_id, s.name AS name,
		       COUNT(g.id) AS grade_count, ROUND(AVG(g.score), 1) AS average
		FROM students s
		JOIN grades g ON g.student_id = s.id
		GROUP BY s.id, s.name
		HAVING MIN(g.score) < ?
		ORDER BY s.name COLLATE NOCASE, s.id`

	summaryQuery = `
		WITH per_student AS (
			SELECT student_id, AVG(score) AS average
			FROM grades
			GROUP BY student_id
		)
		SELECT (SELECT COUNT(*) FROM students) AS students,
		       COUNT(*) AS graded_students,
		       (SELECT COUNT(*) FROM grades) AS grades,
		       ROUND(MAX(average), 1) AS max_average,
		       ROUND(MIN(average), 1) AS min_average,
		       ROUND(AVG(average), 1) AS overall_average
		FROM per_student`
)

// StudentAverages lists every student with their grade count and average.
// Students without grades have a nil average.
func (r *Repository) StudentAverages() ([]entities.StudentAverage, error) {
	rows := make([]entities.StudentAverage, 0)
	if err := r.db.Raw(studentAveragesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("student averages: %w", err)
	}
	return rows, nil
}

func (r *Repository) SubjectAverages() ([]entities.SubjectAverage, error) {
	rows := make([]entities.SubjectAverage, 0)
	if err := r.db.Raw(subjectAveragesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("subject averages: %w", err)
	}
	return rows, nil
}

// TopStudents ranks graded students by average, best first. Ties are broken by name.
func (r *Repository) TopStudents(limit int) ([]entities.StudentAverage, error) {
	if limit < 1 || limit > MaxTopLimit {
		return nil, entities.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxTopLimit))
	}
	rows := make([]entities.StudentAverage, 0, limit)
	if err := r.db.Raw(topStudentsQuery, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top students: %w", err)
	}
	return rows, nil
}

// StudentsBelow lists students with at least one grade under threshold.
func (r *Repository) StudentsBelow(threshold int) ([]entities.StudentAverage, error) {
	rows := make([]entities.StudentAverage, 0)
	if err := r.db.Raw(studentsBelowQuery, threshold).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("students below %d: %w", threshold, err)
	}
	return rows, nil
}

// Summary reports the spread of per-student averages across the gradebook.
func (r *Repository) Summary() (*entities.GradebookSummary, error) {
	var summary entities.GradebookSummary
	if err := r.db.Raw(summaryQuery).Scan(&summary).Error; err != nil {
		return nil, fmt.Errorf("gradebook summary: %w", err)
	}
	return &summary, nil
}
