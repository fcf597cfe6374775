package usecase

import (
	"context"
	"errors"
	"strings"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type TrackingUseCase interface {
	// Track looks an order up by email or phone number.
	Track(ctx context.Context, query string) (*domain.TrackingInfo, error)
}

type trackingUseCase struct {
	intake clients.OrderIntakeClient
	log    *logrus.Logger
}

func NewTrackingUseCase(intake clients.OrderIntakeClient, logger *logrus.Logger) TrackingUseCase {
	return &trackingUseCase{
		intake: intake,
		log:    logger,
	}
}

func (uc *trackingUseCase) Track(ctx context.Context, query string) (*domain.TrackingInfo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("tracking query cannot be empty")
	}

	uc.log.Infof("Use Case: Tracking lookup for %q", query)
	info, err := uc.intake.TrackOrder(ctx, query)
	if err != nil {
		if errors.Is(err, clients.ErrOrderNotFound) {
			uc.log.Warnf("Use Case: No order found for %q", query)
			return nil, err
		}
		uc.log.Errorf("Use Case: Tracking lookup failed for %q: %v", query, err)
		return nil, err
	}

	return info, nil
}
