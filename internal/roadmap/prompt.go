package roadmap

import (
	"fmt"
	"strings"
)

const (
	audioNeed   = "audio-based materials"
	visualNeed  = "visual-based content"
	noNeedsText = "no specific format preferences"
)

func BuildPrompt(req Request) string {
	req = req.normalized()

	var needs []string
	if req.WantsAudio {
		needs = append(needs, audioNeed)
	}
	if req.WantsVisuals {
		needs = append(needs, visualNeed)
	}
	needsText := noNeedsText
	if len(needs) > 0 {
		needsText = strings.Join(needs, " and ")
	}

	return fmt.Sprintf(
		"Create a study roadmap for a student in grade %s who finds %s difficult. "+
			"They can dedicate %d minutes daily. The roadmap should consider their needs: %s. "+
			"Provide detailed per-chapter study plans.",
		req.Grade, req.Subject, req.DailyMinutes, needsText,
	)
}
