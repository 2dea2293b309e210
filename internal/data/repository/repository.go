package repository

import (
	"yoga-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Course       CourseRepository
	Class        ClassRepository
	Booking      BookingRepository
	Conversation ConversationRepository
	Message      MessageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Course:       NewCourseRepository(db, log),
		Class:        NewClassRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Conversation: NewConversationRepository(db, log),
		Message:      NewMessageRepository(db, log),
	}
}
