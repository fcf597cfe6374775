package usecase

import (
	"context"
	"testing"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_ReturnsOrderInfo(t *testing.T) {
	intake := &mockIntakeClient{
		tracking: &domain.TrackingInfo{
			OrderID: "UNIKA-1042",
			Status:  domain.TrackingShipped,
			Courier: "Pathao",
		},
	}
	uc := NewTrackingUseCase(intake, testLogger())

	info, err := uc.Track(context.Background(), "01712345678")
	require.NoError(t, err)
	assert.Equal(t, "UNIKA-1042", info.OrderID)
	assert.Equal(t, domain.TrackingShipped, info.Status)
}

func TestTrack_TrimsQuery(t *testing.T) {
	intake := &mockIntakeClient{tracking: &domain.TrackingInfo{OrderID: "UNIKA-1"}}
	uc := NewTrackingUseCase(intake, testLogger())

	_, err := uc.Track(context.Background(), "  rahim@example.com  ")
	require.NoError(t, err)
}

func TestTrack_EmptyQueryRejected(t *testing.T) {
	uc := NewTrackingUseCase(&mockIntakeClient{}, testLogger())

	_, err := uc.Track(context.Background(), "   ")
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestTrack_NotFoundPassesThrough(t *testing.T) {
	intake := &mockIntakeClient{trackingErr: clients.ErrOrderNotFound}
	uc := NewTrackingUseCase(intake, testLogger())

	_, err := uc.Track(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, clients.ErrOrderNotFound)
}
