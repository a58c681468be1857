package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/AliEmadEldin/SpaceCourseSystem/store"
)

// reminderWindow is how far ahead the sweep looks for starting sessions.
const reminderWindow = 15 * time.Minute

func logScheduler(message string) {
	log.Printf("[SESSION-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSessionReminderScheduler runs a minutely sweep that emails enrolled
// students before their live sessions start. Each session is reminded once.
func StartSessionReminderScheduler(s store.Storage) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		ProcessDueSessionReminders(s, time.Now())
	})
	if err != nil {
		log.Fatalf("Failed to register session reminder job: %v", err)
	}

	c.Start()
	logScheduler("Session reminder scheduler started")
	return c
}

// ProcessDueSessionReminders performs one sweep. Split out so tests can drive
// it with a fixed clock.
func ProcessDueSessionReminders(s store.Storage, now time.Time) {
	sessions, err := s.ListDueSessionReminders(now, now.Add(reminderWindow))
	if err != nil {
		logScheduler("Error fetching due sessions: " + err.Error())
		return
	}

	for _, session := range sessions {
		users, err := s.ListEnrolledUsers(session.CourseID)
		if err != nil {
			logScheduler("Error fetching enrolled users: " + err.Error())
			continue
		}

		for _, user := range users {
			go SendSessionReminderEmail(user.Email, session.Title, session.StartTime, session.MeetingURL)
		}

		if err := s.MarkReminderSent(session.ID); err != nil {
			logScheduler("Error marking reminder sent: " + err.Error())
		}
	}
}
