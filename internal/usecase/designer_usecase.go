package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const stylistErrorFallback = "Something went wrong. Stay stylish anyway!"

const (
	chatSenderCustomer = "Customer"
	chatSenderStylist  = "AI Assistant"
)

// DesignResult carries the generated artwork as a data URL plus a ready-made
// Custom product so the design can go straight into the cart.
type DesignResult struct {
	ImageDataURL string         `json:"imageDataUrl"`
	Product      domain.Product `json:"product"`
}

type DesignerUseCase interface {
	// GenerateDesign returns (nil, nil) when the model produced nothing:
	// "no design produced" is an outcome, not a failure.
	GenerateDesign(ctx context.Context, prompt string) (*DesignResult, error)
	// StylingAdvice never fails from the caller's perspective; model errors
	// collapse into a fixed fallback string. Both sides of the exchange are
	// synced to the backend transcript best-effort.
	StylingAdvice(ctx context.Context, customerID, prompt string) string
}

type designerUseCase struct {
	design      clients.DesignClient
	intake      clients.OrderIntakeClient
	customPrice int
	log         *logrus.Logger
}

func NewDesignerUseCase(design clients.DesignClient, intake clients.OrderIntakeClient, customPrice int, logger *logrus.Logger) DesignerUseCase {
	return &designerUseCase{
		design:      design,
		intake:      intake,
		customPrice: customPrice,
		log:         logger,
	}
}

func (uc *designerUseCase) GenerateDesign(ctx context.Context, prompt string) (*DesignResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("design prompt cannot be empty")
	}

	uc.log.Infof("Use Case: Generating custom design for prompt (%d chars)", len(prompt))

	image, mimeType, err := uc.design.GenerateDesign(ctx, prompt)
	if err != nil {
		uc.log.Warnf("Use Case: Design generation failed: %v", err)
		return nil, nil
	}
	if len(image) == 0 {
		uc.log.Warn("Use Case: No design produced for prompt")
		return nil, nil
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	product := domain.Product{
		ID:          "custom-" + uuid.NewString(),
		Name:        customProductName(prompt),
		Price:       uc.customPrice,
		Description: fmt.Sprintf("One-of-a-kind AI-generated design: %s", prompt),
		Image:       dataURL,
		Category:    domain.CategoryCustom,
	}

	uc.log.Infof("Use Case: Custom design ready, minted product %s", product.ID)
	return &DesignResult{
		ImageDataURL: dataURL,
		Product:      product,
	}, nil
}

func (uc *designerUseCase) StylingAdvice(ctx context.Context, customerID, prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		return stylistErrorFallback
	}

	uc.saveChatMessage(ctx, customerID, chatSenderCustomer, prompt)

	advice, err := uc.design.StylingAdvice(ctx, prompt)
	if err != nil {
		uc.log.Warnf("Use Case: Styling advice failed: %v", err)
		advice = stylistErrorFallback
	}

	uc.saveChatMessage(ctx, customerID, chatSenderStylist, advice)
	return advice
}

// saveChatMessage syncs one chat line to the backend transcript. A failed
// sync loses only transcript history, so it is logged and swallowed.
func (uc *designerUseCase) saveChatMessage(ctx context.Context, customerID, sender, message string) {
	if err := uc.intake.SaveChatMessage(ctx, customerID, sender, message); err != nil {
		uc.log.Warnf("Use Case: Chat transcript sync failed for %s: %v", customerID, err)
	}
}

func customProductName(prompt string) string {
	const maxLen = 20
	if len(prompt) > maxLen {
		return fmt.Sprintf("Custom: %s...", prompt[:maxLen])
	}
	return fmt.Sprintf("Custom: %s", prompt)
}
