package roadmap

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinDailyMinutes = 10
	MaxDailyMinutes = 180

	// FailedText replaces the roadmap whenever the model produced nothing usable.
	FailedText = "Failed to generate roadmap."
)

var (
	ErrInvalidRequest    = errors.New("invalid roadmap request")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrArtifact          = errors.New("failed to build roadmap artifact")
)

type Request struct {
	Grade        Grade
	Subject      string
	DailyMinutes int
	WantsAudio   bool
	WantsVisuals bool
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

func (r Request) normalized() Request {
	r.Grade = Grade(strings.TrimSpace(string(r.Grade)))
	r.Subject = strings.TrimSpace(r.Subject)
	return r
}

func (r Request) Validate() error {
	r = r.normalized()
	if !r.Grade.IsValid() {
		return &ValidationError{Field: "grade", Message: "must be one of 1..12"}
	}
	if r.Subject == "" {
		return &ValidationError{Field: "subject", Message: "Please enter a subject."}
	}
	if r.DailyMinutes < MinDailyMinutes || r.DailyMinutes > MaxDailyMinutes {
		return &ValidationError{
			Field:   "daily_minutes",
			Message: fmt.Sprintf("must be between %d and %d", MinDailyMinutes, MaxDailyMinutes),
		}
	}
	return nil
}

type Result struct {
	Text   string
	Failed bool
	Reason FailureReason
	Model  string
}

func failedResult(reason FailureReason, model string) *Result {
	return &Result{
		Text:   FailedText,
		Failed: true,
		Reason: reason,
		Model:  model,
	}
}

type Artifact struct {
	ContentType string
	Filename    string
	Body        []byte
}

type Output struct {
	Result   *Result
	Format   OutputFormat
	Artifact *Artifact
}

// Completion is what a provider returned for one prompt. Candidates keep the
// order the remote service produced them in.
type Completion struct {
	Candidates []string
	Model      string
}
