package store_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AliEmadEldin/SpaceCourseSystem/models"
	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

func newGormStore(t *testing.T) store.Storage {
	t.Helper()
	// A file in t.TempDir keeps every pooled connection on the same database,
	// which ::memory: does not guarantee.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store_test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.LiveSession{},
		&models.Content{},
	))
	return store.NewGormStore(db)
}

// runForEachStore runs the same contract test against both implementations.
func runForEachStore(t *testing.T, test func(t *testing.T, s store.Storage)) {
	t.Run("gorm", func(t *testing.T) { test(t, newGormStore(t)) })
	t.Run("memory", func(t *testing.T) { test(t, store.NewMemStore()) })
}

func mustCreateUser(t *testing.T, s store.Storage, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "x", Role: role}
	require.NoError(t, s.CreateUser(user))
	return user
}

func mustCreateCourse(t *testing.T, s store.Storage, title string, price *float64) *models.Course {
	t.Helper()
	course := &models.Course{
		Title:       title,
		Description: "d",
		ImageURL:    "https://img.example/c.png",
		Duration:    60,
		Difficulty:  "Beginner",
		Price:       price,
	}
	require.NoError(t, s.CreateCourse(course))
	return course
}

func priceOf(v float64) *float64 { return &v }

func TestCreateUserDuplicateEmail(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		mustCreateUser(t, s, "a@example.com", models.RoleStudent)
		err := s.CreateUser(&models.User{Email: "a@example.com", Password: "x"})
		assert.ErrorIs(t, err, store.ErrEmailTaken)
	})
}

func TestUpdateUserPatch(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		user := mustCreateUser(t, s, "a@example.com", models.RoleStudent)

		role := models.RoleInstructor
		updated, err := s.UpdateUser(user.ID, store.UserPatch{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, models.RoleInstructor, updated.Role)
		assert.Equal(t, "a@example.com", updated.Email)

		_, err = s.UpdateUser(9999, store.UserPatch{Role: &role})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteUserFreesEmail(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		user := mustCreateUser(t, s, "recycled@example.com", models.RoleStudent)
		require.NoError(t, s.DeleteUser(user.ID))

		// A deleted user's email is available for registration again.
		err := s.CreateUser(&models.User{Email: "recycled@example.com", Password: "x"})
		assert.NoError(t, err)
	})
}

func TestDeleteUserNonexistentIsNoop(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		assert.NoError(t, s.DeleteUser(1234))
	})
}

func TestListCoursesPriceFilter(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		mustCreateCourse(t, s, "Cheap", priceOf(10))
		mid := mustCreateCourse(t, s, "Mid", priceOf(25))
		top := mustCreateCourse(t, s, "Top", priceOf(50))
		mustCreateCourse(t, s, "Expensive", priceOf(99))
		mustCreateCourse(t, s, "Unpriced", nil)

		courses, err := s.ListCourses(store.CourseFilter{
			MinPrice: priceOf(25),
			MaxPrice: priceOf(50),
		})
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, mid.ID, courses[0].ID)
		assert.Equal(t, top.ID, courses[1].ID)
	})
}

func TestListCoursesUnpricedExcludedByEitherBound(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		mustCreateCourse(t, s, "Unpriced", nil)

		courses, err := s.ListCourses(store.CourseFilter{MinPrice: priceOf(0)})
		require.NoError(t, err)
		assert.Empty(t, courses)

		courses, err = s.ListCourses(store.CourseFilter{MaxPrice: priceOf(1000)})
		require.NoError(t, err)
		assert.Empty(t, courses)

		// No filter active: the unpriced course is visible.
		courses, err = s.ListCourses(store.CourseFilter{})
		require.NoError(t, err)
		assert.Len(t, courses, 1)
	})
}

func TestListCoursesTitleFilter(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		rocket := mustCreateCourse(t, s, "Advanced Rocket Propulsion", nil)
		mustCreateCourse(t, s, "Introduction to Space Flight", nil)

		courses, err := s.ListCourses(store.CourseFilter{Title: "rocket"})
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, rocket.ID, courses[0].ID)
	})
}

func TestListCoursesFiltersCompose(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		match := mustCreateCourse(t, s, "Orbital Mechanics", priceOf(30))
		mustCreateCourse(t, s, "Orbital Mechanics II", priceOf(80))
		mustCreateCourse(t, s, "Rocketry", priceOf(30))

		courses, err := s.ListCourses(store.CourseFilter{
			Title:    "Orbital",
			MaxPrice: priceOf(50),
		})
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, match.ID, courses[0].ID)
	})
}

func TestUpdateCoursePatch(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		course := mustCreateCourse(t, s, "Old Title", nil)

		title := "New Title"
		updated, err := s.UpdateCourse(course.ID, store.CoursePatch{Title: &title, Price: priceOf(19)})
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		require.NotNil(t, updated.Price)
		assert.Equal(t, 19.0, *updated.Price)
		assert.Equal(t, "d", updated.Description)

		_, err = s.UpdateCourse(9999, store.CoursePatch{Title: &title})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteCourseNonexistentIsNoop(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		assert.NoError(t, s.DeleteCourse(4321))
	})
}

func TestEnrollOncePerUserAndCourse(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		user := mustCreateUser(t, s, "student@example.com", models.RoleStudent)
		course := mustCreateCourse(t, s, "Space Flight", nil)

		enrollment, err := s.Enroll(user.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, enrollment.UserID)
		assert.Equal(t, course.ID, enrollment.CourseID)
		assert.False(t, enrollment.EnrolledAt.IsZero())

		_, err = s.Enroll(user.ID, course.ID)
		assert.ErrorIs(t, err, store.ErrAlreadyEnrolled)
	})
}

func TestEnrollMissingCourse(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		user := mustCreateUser(t, s, "student@example.com", models.RoleStudent)

		_, err := s.Enroll(user.ID, 777)
		assert.ErrorIs(t, err, store.ErrCourseNotFound)
	})
}

func TestListEnrolledCourses(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		user := mustCreateUser(t, s, "student@example.com", models.RoleStudent)
		other := mustCreateUser(t, s, "other@example.com", models.RoleStudent)
		first := mustCreateCourse(t, s, "First", nil)
		second := mustCreateCourse(t, s, "Second", nil)
		mustCreateCourse(t, s, "Unenrolled", nil)

		_, err := s.Enroll(user.ID, first.ID)
		require.NoError(t, err)
		_, err = s.Enroll(user.ID, second.ID)
		require.NoError(t, err)
		_, err = s.Enroll(other.ID, second.ID)
		require.NoError(t, err)

		courses, err := s.ListEnrolledCourses(user.ID)
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, first.ID, courses[0].ID)
		assert.Equal(t, second.ID, courses[1].ID)
	})
}

func TestListLiveSessionsOrderedByStart(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		course := mustCreateCourse(t, s, "Space Flight", nil)
		base := time.Now().Add(time.Hour).Truncate(time.Second)

		later := &models.LiveSession{CourseID: course.ID, Title: "later", StartTime: base.Add(2 * time.Hour), MeetingURL: "https://meet.example/b"}
		require.NoError(t, s.CreateLiveSession(later))
		sooner := &models.LiveSession{CourseID: course.ID, Title: "sooner", StartTime: base, MeetingURL: "https://meet.example/a"}
		require.NoError(t, s.CreateLiveSession(sooner))

		sessions, err := s.ListLiveSessions(course.ID)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, "sooner", sessions[0].Title)
		assert.Equal(t, "later", sessions[1].Title)
	})
}

func TestCreateLiveSessionMissingCourse(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		err := s.CreateLiveSession(&models.LiveSession{CourseID: 555, Title: "x", StartTime: time.Now()})
		assert.ErrorIs(t, err, store.ErrCourseNotFound)
	})
}

func TestDueSessionReminders(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		course := mustCreateCourse(t, s, "Space Flight", nil)
		now := time.Now().Truncate(time.Second)

		due := &models.LiveSession{CourseID: course.ID, Title: "due", StartTime: now.Add(10 * time.Minute), MeetingURL: "https://meet.example/a"}
		require.NoError(t, s.CreateLiveSession(due))
		farOff := &models.LiveSession{CourseID: course.ID, Title: "far", StartTime: now.Add(2 * time.Hour), MeetingURL: "https://meet.example/b"}
		require.NoError(t, s.CreateLiveSession(farOff))

		sessions, err := s.ListDueSessionReminders(now, now.Add(15*time.Minute))
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, due.ID, sessions[0].ID)

		require.NoError(t, s.MarkReminderSent(due.ID))
		sessions, err = s.ListDueSessionReminders(now, now.Add(15*time.Minute))
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}

func TestContentAppendAndList(t *testing.T) {
	runForEachStore(t, func(t *testing.T, s store.Storage) {
		course := mustCreateCourse(t, s, "Space Flight", nil)

		for i := 0; i < 3; i++ {
			content := &models.Content{
				CourseID: course.ID,
				Type:     "application/pdf",
				URL:      fmt.Sprintf("https://cdn.example/%d.pdf", i),
			}
			require.NoError(t, s.AddContent(content))
		}

		items, err := s.ListCourseContent(course.ID)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		items, err = s.ListCourseContent(999)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
