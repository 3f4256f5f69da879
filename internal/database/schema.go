package database

import (
	"gorm.io/gorm"
)

// gradebookSchema is applied in order on every start. Grades reference students
// without cascading, so a student with grades cannot be removed.
var gradebookSchema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK (length(trim(name)) > 0),
		birth_year INTEGER,
		notes TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS grades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE RESTRICT,
		subject TEXT NOT NULL CHECK (length(trim(subject)) > 0),
		score INTEGER NOT NULL CHECK (score BETWEEN 1 AND 100),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_students_name ON students(name COLLATE NOCASE)`,
	`CREATE INDEX IF NOT EXISTS ix_students_birth_year ON students(birth_year)`,
	`CREATE INDEX IF NOT EXISTS ix_grades_student_id ON grades(student_id)`,
	`CREATE INDEX IF NOT EXISTS ix_grades_subject ON grades(subject)`,
	`CREATE INDEX IF NOT EXISTS ix_grades_score ON grades(score)`,
}

func createGradebookSchema(db *gorm.DB) error {
	for _, stmt := range gradebookSchema {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
