package repository

import (
	"fmt"
	"sync"
	"time"

	"unika_storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	log      *logrus.Logger
}

func NewMemorySessionRepository(logger *logrus.Logger) domain.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.Session),
		log:      logger,
	}
}

func (r *memorySessionRepository) CreateSession() (*domain.Session, error) {
	session := &domain.Session{
		ID:         uuid.NewString(),
		View:       domain.ViewHome,
		Zone:       domain.ZoneLocal,
		Submission: domain.SubmissionIdle,
		CreatedAt:  time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session

	r.log.Debugf("Repository: Session %s created", session.ID)
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepository) GetSession(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session with ID %s not found", id)
	}
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepository) SaveSession(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}
