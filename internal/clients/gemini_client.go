package clients

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// DesignClient wraps the generative model behind the AI designer and the
// stylist chat.
type DesignClient interface {
	// GenerateDesign returns raw image bytes, or (nil, nil) when the model
	// produced no image. Failure to produce a design is not an error
	// condition for callers.
	GenerateDesign(ctx context.Context, prompt string) ([]byte, string, error)
	StylingAdvice(ctx context.Context, prompt string) (string, error)
}

const stylistSystemInstruction = "You are a professional fashion stylist for UNIKA TSHIRTS. " +
	"Suggest outfit pairings and t-shirt styles based on the user's occasion or mood. " +
	"Keep it concise, trendy, and encouraging."

const stylistFallback = "I'm sorry, I couldn't get any style advice right now. " +
	"Try wearing something that makes you feel bold!"

type geminiClient struct {
	client       *genai.Client
	designModel  string
	stylistModel string
	log          *logrus.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, designModel, stylistModel string, logger *logrus.Logger) (DesignClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiClient{
		client:       client,
		designModel:  designModel,
		stylistModel: stylistModel,
		log:          logger,
	}, nil
}

func (c *geminiClient) GenerateDesign(ctx context.Context, prompt string) ([]byte, string, error) {
	framed := fmt.Sprintf("Create a professional t-shirt graphic design for: %s. "+
		"The design should be centered, high-contrast, artistic, and suitable for printing on a premium t-shirt.", prompt)

	c.log.Infof("DesignClient: Generating design with model %s", c.designModel)

	resp, err := c.client.Models.GenerateContent(ctx, c.designModel,
		genai.Text(framed),
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: "1:1",
			},
		},
	)
	if err != nil {
		c.log.Errorf("DesignClient: Design generation failed: %v", err)
		return nil, "", fmt.Errorf("design generation failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
	}

	c.log.Warn("DesignClient: Model returned no image data")
	return nil, "", nil
}

func (c *geminiClient) StylingAdvice(ctx context.Context, prompt string) (string, error) {
	c.log.Infof("DesignClient: Requesting styling advice with model %s", c.stylistModel)

	resp, err := c.client.Models.GenerateContent(ctx, c.stylistModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(stylistSystemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		c.log.Errorf("DesignClient: Styling advice failed: %v", err)
		return "", fmt.Errorf("styling advice failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return stylistFallback, nil
	}
	return text, nil
}
