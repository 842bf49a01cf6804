package model

import (
	"time"
)

// DateLayout is the display layout for the submission date (YYYY/MM/DD).
const DateLayout = "2006/01/02"

// CoverPageInput holds the fields printed on a lab report cover page.
// Values are rendered verbatim; only SubmissionDate is formatted.
type CoverPageInput struct {
	SubjectName    string    `json:"subject_name"`
	StudentName    string    `json:"student_name"`
	RollNumber     string    `json:"roll_number"`
	TeacherName    string    `json:"teacher_name"`
	SubmissionDate time.Time `json:"submission_date"`
}

// FormattedDate returns SubmissionDate as YYYY/MM/DD.
func (in CoverPageInput) FormattedDate() string {
	return FormatDate(in.SubmissionDate)
}

// FormatDate renders t as YYYY/MM/DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
