package store

import (
	"errors"
	"time"

	"github.com/AliEmadEldin/SpaceCourseSystem/models"
)

// Domain errors returned by Storage implementations. Handlers translate these
// to HTTP statuses; anything else is a storage failure and maps to 500.
var (
	ErrNotFound        = errors.New("record not found")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrAlreadyEnrolled = errors.New("user is already enrolled in this course")
	ErrCourseNotFound  = errors.New("course not found")
)

// CourseFilter narrows a course listing. Absent fields impose no constraint;
// present fields compose with AND. Price bounds are inclusive and exclude
// courses with no price set.
type CourseFilter struct {
	Title    string
	MinPrice *float64
	MaxPrice *float64
}

// UserPatch is a partial update; nil fields are left untouched. Password, when
// present, must already be hashed by the caller.
type UserPatch struct {
	Email    *string
	Password *string
	Role     *models.Role
}

// CoursePatch is a partial update; nil fields are left untouched.
type CoursePatch struct {
	Title        *string
	Description  *string
	ImageURL     *string
	Duration     *int
	Difficulty   *string
	InstructorID *uint
	Price        *float64
}

// Storage is the persistence gateway. The GORM implementation backs the
// server; the in-memory implementation is the test double.
type Storage interface {
	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(id uint, patch UserPatch) (*models.User, error)
	DeleteUser(id uint) error

	CreateCourse(course *models.Course) error
	GetCourse(id uint) (*models.Course, error)
	ListCourses(filter CourseFilter) ([]models.Course, error)
	UpdateCourse(id uint, patch CoursePatch) (*models.Course, error)
	DeleteCourse(id uint) error

	Enroll(userID, courseID uint) (*models.Enrollment, error)
	ListEnrolledCourses(userID uint) ([]models.Course, error)
	ListEnrolledUsers(courseID uint) ([]models.User, error)

	CreateLiveSession(session *models.LiveSession) error
	GetLiveSession(id uint) (*models.LiveSession, error)
	ListLiveSessions(courseID uint) ([]models.LiveSession, error)
	ListDueSessionReminders(from, until time.Time) ([]models.LiveSession, error)
	MarkReminderSent(sessionID uint) error

	AddContent(content *models.Content) error
	ListCourseContent(courseID uint) ([]models.Content, error)
}
