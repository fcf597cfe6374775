package usecase

import (
	"testing"

	"unika_storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStart_Defaults(t *testing.T) {
	uc := NewSessionUseCase(newMockSessionRepository(), testLogger())

	session, err := uc.Start()
	require.NoError(t, err)
	assert.Equal(t, domain.ViewHome, session.View)
	assert.Equal(t, domain.ZoneLocal, session.Zone)
	assert.Equal(t, domain.SubmissionIdle, session.Submission)
}

func TestSessionSetView(t *testing.T) {
	repo := newMockSessionRepository()
	uc := NewSessionUseCase(repo, testLogger())
	session, err := uc.Start()
	require.NoError(t, err)

	updated, err := uc.SetView(session.ID, domain.ViewShop)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewShop, updated.View)

	_, err = uc.SetView(session.ID, "nonsense")
	assert.ErrorContains(t, err, "invalid view")
}

func TestSessionSetZone(t *testing.T) {
	repo := newMockSessionRepository()
	uc := NewSessionUseCase(repo, testLogger())
	session, err := uc.Start()
	require.NoError(t, err)

	updated, err := uc.SetZone(session.ID, domain.ZoneRemote)
	require.NoError(t, err)
	assert.Equal(t, domain.ZoneRemote, updated.Zone)

	_, err = uc.SetZone(session.ID, "international")
	assert.ErrorContains(t, err, "invalid shipping zone")
}

func TestSessionGet_EmptyID(t *testing.T) {
	uc := NewSessionUseCase(newMockSessionRepository(), testLogger())

	_, err := uc.Get("")
	assert.ErrorContains(t, err, "cannot be empty")
}
