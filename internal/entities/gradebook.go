package entities

import "time"

const (
	MaxStudentNameLength = 255
	MaxNotesLength       = 2000
	MaxSubjectLength     = 100
	MinBirthYear         = 1900

	MinScore = 1
	MaxScore = 100
)

type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	BirthYear *int      `json:"birth_year"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Student) TableName() string {
	return "students"
}

func (s *Student) Normalize() error {
	v := &ValidationError{}
	s.Name = requiredText(v, "name", s.Name, MaxStudentNameLength)
	s.Notes = optionalText(v, "notes", s.Notes, MaxNotesLength)
	if s.BirthYear != nil {
		intInRange(v, "birth_year", *s.BirthYear, MinBirthYear, time.Now().Year())
	}
	return v.Err()
}

type StudentPatch struct {
	Name      *string `json:"name"`
	BirthYear *int    `json:"birth_year"`
	Notes     *string `json:"notes"`
}

func (p StudentPatch) IsEmpty() bool {
	return p.Name == nil && p.BirthYear == nil && p.Notes == nil
}

func (p *StudentPatch) Columns() (map[string]any, error) {
	v := &ValidationError{}
	cols := make(map[string]any)
	if p.Name != nil {
		cols["name"] = requiredText(v, "name", *p.Name, MaxStudentNameLength)
	}
	if p.BirthYear != nil {
		intInRange(v, "birth_year", *p.BirthYear, MinBirthYear, time.Now().Year())
		cols["birth_year"] = *p.BirthYear
	}
	if p.Notes != nil {
		cols["notes"] = optionalText(v, "notes", *p.Notes, MaxNotesLength)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}

type StudentFilter struct {
	Name          string
	BirthYearFrom *int
	BirthYearTo   *int
}

type Grade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `json:"student_id"`
	Subject   string    `json:"subject"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func (Grade) TableName() string {
	return "grades"
}

func (g *Grade) Normalize() error {
	v := &ValidationError{}
	if g.StudentID == 0 {
		v.Add("student_id", "is required")
	}
	g.Subject = requiredText(v, "subject", g.Subject, MaxSubjectLength)
	intInRange(v, "score", g.Score, MinScore, MaxScore)
	return v.Err()
}

type GradePatch struct {
	StudentID *uint   `json:"student_id"`
	Subject   *string `json:"subject"`
	Score     *int    `json:"score"`
}

func (p GradePatch) IsEmpty() bool {
	return p.StudentID == nil && p.Subject == nil && p.Score == nil
}

func (p *GradePatch) Columns() (map[string]any, error) {
	v := &ValidationError{}
	cols := make(map[string]any)
	if p.StudentID != nil {
		if *p.StudentID == 0 {
			v.Add("student_id", "is required")
		}
		cols["student_id"] = *p.StudentID
	}
	if p.Subject != nil {
		cols["subject"] = requiredText(v, "subject", *p.Subject, MaxSubjectLength)
	}
	if p.Score != nil {
		intInRange(v, "score", *p.Score, MinScore, MaxScore)
		cols["score"] = *p.Score
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}

// GradeFilter narrows grade listings; zero values mean "any".
type GradeFilter struct {
	StudentID uint
	Subject   string
	MinScore  *int
	MaxScore  *int
}

// StudentAverage is one row of the per-student report.
type StudentAverage struct {
	StudentID  uint     `json:"student_id"`
	Name       string   `json:"name"`
	GradeCount int      `json:"grade_count"`
	Average    *float64 `json:"average"`
}

// SubjectAverage is one row of the per-subject report.
type SubjectAverage struct {
	Subject    string  `json:"subject"`
	GradeCount int     `json:"grade_count"`
	Average    float64 `json:"average"`
	MinScore   int     `json:"min_score"`
	MaxScore   int     `json:"max_score"`
}

// GradebookSummary mirrors the classic "full report": spread of student averages.
type GradebookSummary struct {
	Students       int      `json:"students"`
	GradedStudents int      `json:"graded_students"`
	Grades         int      `json:"grades"`
	MaxAverage     *float64 `json:"max_average"`
	MinAverage     *float64 `json:"min_average"`
	OverallAverage *float64 `json:"overall_average"`
}

// RosterRow is one spreadsheet line of a student import. Subject and Score are
// both empty when the line only registers a student.
type RosterRow struct {
	Line      int
	Name      string
	BirthYear *int
	Subject   string
	Score     *int
}

type ImportResult struct {
	Rows            int `json:"rows"`
	StudentsCreated int `json:"students_created"`
	GradesCreated   int `json:"grades_created"`
}
