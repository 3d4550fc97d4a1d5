package roadmap_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/roadmap-lambda/internal/roadmap"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		prompt := roadmap.BuildPrompt(roadmap.Request{
			Grade:        "5",
			Subject:      "Math",
			DailyMinutes: 30,
			WantsAudio:   true,
		})

		assert.Contains(t, prompt, "grade 5")
		assert.Contains(t, prompt, "Math")
		assert.Contains(t, prompt, "30 minutes daily")
		assert.Contains(t, prompt, "audio-based materials")
		assert.NotContains(t, prompt, "visual-based content")
	})

	t.Run("NoPreferences", func(t *testing.T) {
		prompt := roadmap.BuildPrompt(roadmap.Request{Grade: "9", Subject: "History", DailyMinutes: 60})
		assert.Contains(t, prompt, "their needs: no specific format preferences.")
		assert.NotContains(t, prompt, "  ")
	})

	t.Run("BothPreferences", func(t *testing.T) {
		prompt := roadmap.BuildPrompt(roadmap.Request{
			Grade: "12", Subject: "Physics", DailyMinutes: 120,
			WantsAudio: true, WantsVisuals: true,
		})
		assert.Contains(t, prompt, "audio-based materials and visual-based content")
	})

	t.Run("TrimsSubject", func(t *testing.T) {
		prompt := roadmap.BuildPrompt(roadmap.Request{Grade: " 3 ", Subject: "  Reading  ", DailyMinutes: 10})
		assert.Contains(t, prompt, "grade 3 who finds Reading difficult")
	})
}

func TestBuildPromptProperties(t *testing.T) {
	subjects := []string{"Math", "Biology", "World History", "Français"}

	for _, grade := range roadmap.AllGrades {
		for _, subject := range subjects {
			for minutes := roadmap.MinDailyMinutes; minutes <= roadmap.MaxDailyMinutes; minutes += 10 {
				for flags := 0; flags < 4; flags++ {
					req := roadmap.Request{
						Grade:        grade,
						Subject:      subject,
						DailyMinutes: minutes,
						WantsAudio:   flags&1 != 0,
						WantsVisuals: flags&2 != 0,
					}
					prompt := roadmap.BuildPrompt(req)

					if !strings.Contains(prompt, "grade "+string(grade)+" ") ||
						!strings.Contains(prompt, subject) ||
						!strings.Contains(prompt, strconv.Itoa(minutes)+" minutes daily") {
						t.Fatalf("prompt misses an input for %+v: %q", req, prompt)
					}
					if got := strings.Contains(prompt, "audio-based materials"); got != req.WantsAudio {
						t.Fatalf("audio phrase present=%v, want %v: %q", got, req.WantsAudio, prompt)
					}
					if got := strings.Contains(prompt, "visual-based content"); got != req.WantsVisuals {
						t.Fatalf("visual phrase present=%v, want %v: %q", got, req.WantsVisuals, prompt)
					}
				}
			}
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    roadmap.OutputFormat
		wantErr bool
	}{
		{"", roadmap.FormatText, false},
		{"text", roadmap.FormatText, false},
		{" PDF ", roadmap.FormatPDF, false},
		{"audio", roadmap.FormatAudio, false},
		{"docx", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := roadmap.ParseOutputFormat(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, roadmap.ErrUnsupportedFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
