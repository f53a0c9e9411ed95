package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Lixing-Zhang/tshirt-designer/internal/ai"
	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
	"github.com/Lixing-Zhang/tshirt-designer/internal/prompt"
)

var (
	ErrCreateDesign     = errors.New("failed to create design")
	ErrImproveDesign    = errors.New("failed to improve design")
	ErrMissingEventType = errors.New("event type is required")
	ErrEmptyFeedback    = errors.New("feedback is required")
)

// Translator turns source-language text into English
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ImageGenerator renders a prompt into an image
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, opts ai.ImageOptions) (*ai.ImageResult, error)
}

// DesignService runs the translate -> compose -> generate pipeline.
// It keeps no state between calls.
type DesignService struct {
	translator Translator
	images     ImageGenerator
	log        *slog.Logger
}

// NewDesignService creates a new design service
func NewDesignService(translator Translator, images ImageGenerator, log *slog.Logger) *DesignService {
	return &DesignService{
		translator: translator,
		images:     images,
		log:        log,
	}
}

// CreateDesign generates a first design from a source-language request
func (s *DesignService) CreateDesign(ctx context.Context, req models.DesignRequest, opts models.DesignOptions) (*models.GeneratedDesign, error) {
	if strings.TrimSpace(req.EventType) == "" {
		return nil, s.fail(ErrCreateDesign, "input", ErrMissingEventType)
	}

	eventType, description, err := s.translateRequest(ctx, req)
	if err != nil {
		return nil, s.fail(ErrCreateDesign, "translation", err)
	}

	p := prompt.ComposePrompt(eventType, description, req.IsBackDesign)
	if opts.StylePreferences != nil {
		p = prompt.EnhanceWithStyle(p, *opts.StylePreferences)
	}

	img, err := s.images.GenerateImage(ctx, p, ai.ImageOptions{Quality: imageQuality(opts)})
	if err != nil {
		return nil, s.fail(ErrCreateDesign, "image generation", err)
	}

	s.log.Info("design created", "back", req.IsBackDesign, "prompt_len", len(p))

	return &models.GeneratedDesign{
		ImageURL:      img.URL,
		Prompt:        p,
		RevisedPrompt: img.RevisedPrompt,
	}, nil
}

// translateRequest translates the event type and the optional description
// concurrently. Either failure cancels the other.
func (s *DesignService) translateRequest(ctx context.Context, req models.DesignRequest) (string, string, error) {
	var eventType, description string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		translated, err := s.translator.Translate(gctx, req.EventType)
		if err != nil {
			return fmt.Errorf("event type: %w", err)
		}
		eventType = translated
		return nil
	})

	if strings.TrimSpace(req.Description) != "" {
		g.Go(func() error {
			translated, err := s.translator.Translate(gctx, req.Description)
			if err != nil {
				return fmt.Errorf("description: %w", err)
			}
			description = translated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return eventType, description, nil
}

// ImproveDesign regenerates a design from the caller's lineage and feedback.
// The result records the previous iteration exactly as it was submitted.
func (s *DesignService) ImproveDesign(ctx context.Context, history models.DesignHistory, feedback string, opts models.DesignOptions) (*models.GeneratedDesign, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, ErrEmptyFeedback
	}

	translated, err := s.translator.Translate(ctx, feedback)
	if err != nil {
		return nil, s.fail(ErrImproveDesign, "translation", err)
	}

	p := prompt.ImprovementPrompt(history, translated)
	if opts.StylePreferences != nil {
		p = prompt.EnhanceWithStyle(p, *opts.StylePreferences)
	}

	img, err := s.images.GenerateImage(ctx, p, ai.ImageOptions{Quality: imageQuality(opts)})
	if err != nil {
		return nil, s.fail(ErrImproveDesign, "image generation", err)
	}

	s.log.Info("design improved", "prompt_len", len(p))

	return &models.GeneratedDesign{
		ImageURL:      img.URL,
		Prompt:        p,
		RevisedPrompt: img.RevisedPrompt,
		PreviousVersion: &models.DesignVersion{
			ImageURL:      history.ImageURL,
			Prompt:        history.OriginalPrompt,
			RevisedPrompt: history.RevisedPrompt,
		},
	}, nil
}

func (s *DesignService) fail(op error, stage string, cause error) error {
	s.log.Error(op.Error(), "stage", stage, "error", cause)
	return fmt.Errorf("%w: %w", op, cause)
}

func imageQuality(opts models.DesignOptions) string {
	if opts.HighQuality {
		return ai.QualityHD
	}
	return ai.QualityStandard
}
