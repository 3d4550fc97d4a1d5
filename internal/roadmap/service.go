package roadmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/document"
	"github.com/saulo-duarte/roadmap-lambda/internal/speech"
)

const (
	documentTitle = "Personalized Study Roadmap"
	audioFilename = "roadmap_audio.mp3"
	pdfFilename   = "roadmap.pdf"
)

type Service interface {
	// Generate never reports remote failures as errors: they come back as a
	// failed Result carrying FailedText. Only invalid input is an error.
	Generate(ctx context.Context, req Request) (*Result, error)
	Produce(ctx context.Context, req Request, format OutputFormat) (*Output, error)
}

type service struct {
	provider    Provider
	synthesizer speech.Synthesizer
	renderer    document.Renderer
	timeout     time.Duration
}

func NewService(provider Provider, synthesizer speech.Synthesizer, renderer document.Renderer, timeout time.Duration) Service {
	return &service{
		provider:    provider,
		synthesizer: synthesizer,
		renderer:    renderer,
		timeout:     timeout,
	}
}

func (s *service) Generate(ctx context.Context, req Request) (*Result, error) {
	req = req.normalized()
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"grade":         req.Grade,
		"subject":       req.Subject,
		"daily_minutes": req.DailyMinutes,
	})

	if err := req.Validate(); err != nil {
		log.WithError(err).Warn("Rejected roadmap request")
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	completion, err := s.provider.Generate(ctx, BuildPrompt(req))
	if err != nil {
		log.WithError(err).WithField("reason", ReasonRemoteError).Error("Roadmap generation failed")
		return failedResult(ReasonRemoteError, s.provider.Model()), nil
	}

	if len(completion.Candidates) == 0 {
		log.WithField("reason", ReasonNoCandidates).Warn("Model returned no candidates")
		return failedResult(ReasonNoCandidates, completion.Model), nil
	}

	text := strings.TrimSpace(completion.Candidates[0])
	if text == "" {
		log.WithField("reason", ReasonEmptyText).Warn("First candidate has no text")
		return failedResult(ReasonEmptyText, completion.Model), nil
	}

	log.WithField("model", completion.Model).Info("Roadmap generated")
	return &Result{Text: text, Model: completion.Model}, nil
}

func (s *service) Produce(ctx context.Context, req Request, format OutputFormat) (*Output, error) {
	if !format.IsValid() {
		return nil, ErrUnsupportedFormat
	}

	result, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	out := &Output{Result: result, Format: format}
	if result.Failed || format == FormatText {
		return out, nil
	}

	log := config.WithContext(ctx).WithField("format", format)
	artifact, err := s.buildArtifact(ctx, req.normalized(), result.Text, format)
	if err != nil {
		log.WithError(err).Error("Failed to build roadmap artifact")
		return out, fmt.Errorf("%w: %s: %w", ErrArtifact, format, err)
	}
	out.Artifact = artifact
	return out, nil
}

func (s *service) buildArtifact(ctx context.Context, req Request, text string, format OutputFormat) (*Artifact, error) {
	switch format {
	case FormatAudio:
		if s.synthesizer == nil {
			return nil, ErrUnsupportedFormat
		}
		audio, err := s.synthesizer.Synthesize(ctx, text)
		if err != nil {
			return nil, err
		}
		return &Artifact{ContentType: "audio/mpeg", Filename: audioFilename, Body: audio}, nil

	case FormatPDF:
		if s.renderer == nil {
			return nil, ErrUnsupportedFormat
		}
		pdf, err := s.renderer.Render(ctx, document.Document{
			Title:    documentTitle,
			Subtitle: Subtitle(req),
			Body:     text,
		})
		if err != nil {
			return nil, err
		}
		return &Artifact{ContentType: "application/pdf", Filename: pdfFilename, Body: pdf}, nil
	}
	return nil, ErrUnsupportedFormat
}

func Subtitle(req Request) string {
	return fmt.Sprintf("Grade %s - %s - %d minutes daily", req.Grade, req.Subject, req.DailyMinutes)
}
