package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AliEmadEldin/SpaceCourseSystem/models"
)

// GormStore implements Storage over a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *GormStore) DeleteUser(id uint) error {
	// Unconditional hard delete; removing an absent row is a no-op. A soft
	// delete would leave the row under the unique email constraint and block
	// that email from ever registering again.
	return s.db.Unscoped().Delete(&models.User{}, id).Error
}

func (s *GormStore) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *GormStore) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) ListCourses(filter CourseFilter) ([]models.Course, error) {
	q := s.db.Model(&models.Course{})
	if filter.Title != "" {
		// Lowercased LIKE keeps the match case-insensitive on both postgres
		// and sqlite.
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Title+"%")
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) UpdateCourse(id uint, patch CoursePatch) (*models.Course, error) {
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Difficulty != nil {
		updates["difficulty"] = *patch.Difficulty
	}
	if patch.InstructorID != nil {
		updates["instructor_id"] = *patch.InstructorID
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if len(updates) == 0 {
		return course, nil
	}

	if err := s.db.Model(course).Updates(updates).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (s *GormStore) DeleteCourse(id uint) error {
	return s.db.Delete(&models.Course{}, id).Error
}

func (s *GormStore) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	// Early exit so the caller gets the friendly error without hitting the
	// unique index.
	var existing models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.GetCourse(courseID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		// Two concurrent enrollments can both pass the check above; the
		// composite unique index decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStore) ListEnrolledCourses(userID uint) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Model(&models.Course{}).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ? AND enrollments.deleted_at IS NULL", userID).
		Order("courses.id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) ListEnrolledUsers(courseID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Where("enrollments.course_id = ? AND enrollments.deleted_at IS NULL", courseID).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) CreateLiveSession(session *models.LiveSession) error {
	if _, err := s.GetCourse(session.CourseID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return s.db.Create(session).Error
}

func (s *GormStore) GetLiveSession(id uint) (*models.LiveSession, error) {
	var session models.LiveSession
	if err := s.db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *GormStore) ListLiveSessions(courseID uint) ([]models.LiveSession, error) {
	var sessions []models.LiveSession
	err := s.db.Where("course_id = ?", courseID).
		Order("start_time asc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormStore) ListDueSessionReminders(from, until time.Time) ([]models.LiveSession, error) {
	var sessions []models.LiveSession
	err := s.db.Where("reminder_sent = ? AND start_time >= ? AND start_time < ?", false, from, until).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormStore) MarkReminderSent(sessionID uint) error {
	return s.db.Model(&models.LiveSession{}).
		Where("id = ?", sessionID).
		Update("reminder_sent", true).Error
}

func (s *GormStore) AddContent(content *models.Content) error {
	return s.db.Create(content).Error
}

func (s *GormStore) ListCourseContent(courseID uint) ([]models.Content, error) {
	var content []models.Content
	if err := s.db.Where("course_id = ?", courseID).Find(&content).Error; err != nil {
		return nil, err
	}
	return content, nil
}
