package roadmap

import "github.com/google/uuid"

type GenerateRoadmapDTO struct {
	Grade        string `json:"grade" example:"5"`
	Subject      string `json:"subject" example:"Math"`
	DailyMinutes int    `json:"daily_minutes" example:"30"`
	WantsAudio   bool   `json:"wants_audio"`
	WantsVisuals bool   `json:"wants_visuals"`
	Format       string `json:"format,omitempty" example:"text"`
}

func (d GenerateRoadmapDTO) toRequest() Request {
	return Request{
		Grade:        Grade(d.Grade),
		Subject:      d.Subject,
		DailyMinutes: d.DailyMinutes,
		WantsAudio:   d.WantsAudio,
		WantsVisuals: d.WantsVisuals,
	}
}

type RoadmapResponse struct {
	ID      *uuid.UUID    `json:"id,omitempty"`
	Roadmap string        `json:"roadmap"`
	Failed  bool          `json:"failed"`
	Reason  FailureReason `json:"reason,omitempty"`
	Model   string        `json:"model,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func toResponse(id *uuid.UUID, r *Result) RoadmapResponse {
	return RoadmapResponse{
		ID:      id,
		Roadmap: r.Text,
		Failed:  r.Failed,
		Reason:  r.Reason,
		Model:   r.Model,
	}
}
