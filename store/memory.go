package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AliEmadEldin/SpaceCourseSystem/models"
)

// MemStore is an in-memory Storage used as a test double. It honors the same
// contract as GormStore, including the enrollment uniqueness guard.
type MemStore struct {
	mu sync.Mutex

	users       map[uint]models.User
	courses     map[uint]models.Course
	enrollments map[uint]models.Enrollment
	sessions    map[uint]models.LiveSession
	content     map[uint]models.Content

	nextID uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:       make(map[uint]models.User),
		courses:     make(map[uint]models.Course),
		enrollments: make(map[uint]models.Enrollment),
		sessions:    make(map[uint]models.LiveSession),
		content:     make(map[uint]models.Content),
		nextID:      1,
	}
}

func (s *MemStore) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	user.ID = s.allocID()
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemStore) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil {
		for otherID, u := range s.users {
			if otherID != id && u.Email == *patch.Email {
				return nil, ErrEmailTaken
			}
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	s.users[id] = user
	return &user, nil
}

func (s *MemStore) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	return nil
}

func (s *MemStore) CreateCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = s.allocID()
	course.CreatedAt = time.Now()
	s.courses[course.ID] = *course
	return nil
}

func (s *MemStore) GetCourse(id uint) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &course, nil
}

func (s *MemStore) ListCourses(filter CourseFilter) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var courses []models.Course
	for _, c := range s.courses {
		if filter.Title != "" &&
			!strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.MinPrice != nil && (c.Price == nil || *c.Price < *filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && (c.Price == nil || *c.Price > *filter.MaxPrice) {
			continue
		}
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemStore) UpdateCourse(id uint, patch CoursePatch) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		course.ImageURL = *patch.ImageURL
	}
	if patch.Duration != nil {
		course.Duration = *patch.Duration
	}
	if patch.Difficulty != nil {
		course.Difficulty = *patch.Difficulty
	}
	if patch.InstructorID != nil {
		course.InstructorID = patch.InstructorID
	}
	if patch.Price != nil {
		course.Price = patch.Price
	}
	s.courses[id] = course
	return &course, nil
}

func (s *MemStore) DeleteCourse(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.courses, id)
	return nil
}

func (s *MemStore) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return nil, ErrAlreadyEnrolled
		}
	}
	if _, ok := s.courses[courseID]; !ok {
		return nil, ErrCourseNotFound
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	enrollment.ID = s.allocID()
	enrollment.CreatedAt = enrollment.EnrolledAt
	s.enrollments[enrollment.ID] = enrollment
	return &enrollment, nil
}

func (s *MemStore) ListEnrolledCourses(userID uint) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var courses []models.Course
	for _, e := range s.enrollments {
		if e.UserID != userID {
			continue
		}
		if c, ok := s.courses[e.CourseID]; ok {
			courses = append(courses, c)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemStore) ListEnrolledUsers(courseID uint) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	for _, e := range s.enrollments {
		if e.CourseID != courseID {
			continue
		}
		if u, ok := s.users[e.UserID]; ok {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemStore) CreateLiveSession(session *models.LiveSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[session.CourseID]; !ok {
		return ErrCourseNotFound
	}
	session.ID = s.allocID()
	session.CreatedAt = time.Now()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemStore) GetLiveSession(id uint) (*models.LiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemStore) ListLiveSessions(courseID uint) ([]models.LiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sessions []models.LiveSession
	for _, sess := range s.sessions {
		if sess.CourseID == courseID {
			sessions = append(sessions, sess)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *MemStore) ListDueSessionReminders(from, until time.Time) ([]models.LiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sessions []models.LiveSession
	for _, sess := range s.sessions {
		if sess.ReminderSent {
			continue
		}
		if !sess.StartTime.Before(from) && sess.StartTime.Before(until) {
			sessions = append(sessions, sess)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions, nil
}

func (s *MemStore) MarkReminderSent(sessionID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		sess.ReminderSent = true
		s.sessions[sessionID] = sess
	}
	return nil
}

func (s *MemStore) AddContent(content *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content.ID = s.allocID()
	content.CreatedAt = time.Now()
	s.content[content.ID] = *content
	return nil
}

func (s *MemStore) ListCourseContent(courseID uint) ([]models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.Content
	for _, c := range s.content {
		if c.CourseID == courseID {
			items = append(items, c)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
