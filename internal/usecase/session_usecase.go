package usecase

import (
	"errors"
	"fmt"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type SessionUseCase interface {
	Start() (*domain.Session, error)
	Get(id string) (*domain.Session, error)
	SetView(id string, view domain.View) (*domain.Session, error)
	SetZone(id string, zone domain.Zone) (*domain.Session, error)
}

type sessionUseCase struct {
	sessionRepo domain.SessionRepository
	log         *logrus.Logger
}

func NewSessionUseCase(repo domain.SessionRepository, logger *logrus.Logger) SessionUseCase {
	return &sessionUseCase{
		sessionRepo: repo,
		log:         logger,
	}
}

func (uc *sessionUseCase) Start() (*domain.Session, error) {
	session, err := uc.sessionRepo.CreateSession()
	if err != nil {
		uc.log.Errorf("Use Case: Failed to create session: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Session %s started", session.ID)
	return session, nil
}

func (uc *sessionUseCase) Get(id string) (*domain.Session, error) {
	if id == "" {
		return nil, errors.New("session ID cannot be empty")
	}
	return uc.sessionRepo.GetSession(id)
}

func (uc *sessionUseCase) SetView(id string, view domain.View) (*domain.Session, error) {
	if !domain.IsValidView(view) {
		return nil, fmt.Errorf("invalid view %q", view)
	}

	session, err := uc.sessionRepo.GetSession(id)
	if err != nil {
		return nil, err
	}

	session.View = view
	if err := uc.sessionRepo.SaveSession(session); err != nil {
		uc.log.Errorf("Use Case: Failed to save view for session %s: %v", id, err)
		return nil, err
	}
	uc.log.Debugf("Use Case: Session %s view set to %s", id, view)
	return session, nil
}

func (uc *sessionUseCase) SetZone(id string, zone domain.Zone) (*domain.Session, error) {
	if !domain.IsValidZone(zone) {
		return nil, fmt.Errorf("invalid shipping zone %q", zone)
	}

	session, err := uc.sessionRepo.GetSession(id)
	if err != nil {
		return nil, err
	}

	session.Zone = zone
	if err := uc.sessionRepo.SaveSession(session); err != nil {
		uc.log.Errorf("Use Case: Failed to save zone for session %s: %v", id, err)
		return nil, err
	}
	uc.log.Debugf("Use Case: Session %s zone set to %s", id, zone)
	return session, nil
}
