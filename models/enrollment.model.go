package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment grants a user access to a course. The composite unique index is
// the authoritative guard against double enrollment; the application-level
// existence check is only an early exit.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"userId" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID   uint      `json:"courseId" gorm:"uniqueIndex:idx_user_course;not null"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
