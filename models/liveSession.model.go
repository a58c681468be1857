package models

import (
	"time"

	"gorm.io/gorm"
)

// LiveSession is a scheduled meeting attached to a course. Sessions are
// append-only through the API; ReminderSent is scheduler bookkeeping.
type LiveSession struct {
	gorm.Model
	CourseID     uint      `json:"courseId" gorm:"index;not null"`
	Title        string    `json:"title"`
	StartTime    time.Time `json:"startTime"`
	MeetingURL   string    `json:"meetingUrl"`
	ReminderSent bool      `json:"-" gorm:"default:false"`
}
