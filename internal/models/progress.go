package models

// EducationStatus represents a learner's progress status for one course
type EducationStatus string

const (
	// StatusInProgress marks a course the learner is currently taking
	StatusInProgress EducationStatus = "1"
	// StatusCompleted marks a course the learner has finished
	StatusCompleted EducationStatus = "9"
)

// ProgressRecord is one row of a learner's history: a course joined with
// the learner's status for it
type ProgressRecord struct {
	Course
	Status EducationStatus `json:"status"`
}

// LearnerState is the analyzed progress state of one learner, rebuilt from
// the full history on every recommendation request
type LearnerState struct {
	CurrentLevel      Level
	CurrentCategory   string
	ExcludedCourseIDs []string
	InProgress        *ProgressRecord
}
