package roadmap

import "strings"

type Grade string

var AllGrades = []Grade{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

func (g Grade) IsValid() bool {
	for _, v := range AllGrades {
		if g == v {
			return true
		}
	}
	return false
}

type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatAudio OutputFormat = "audio"
	FormatPDF   OutputFormat = "pdf"
)

var AllFormats = []OutputFormat{FormatText, FormatAudio, FormatPDF}

func (f OutputFormat) IsValid() bool {
	for _, v := range AllFormats {
		if f == v {
			return true
		}
	}
	return false
}

// ParseOutputFormat maps user input to a format; an empty value means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatText, nil
	}
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

type FailureReason string

const (
	ReasonNoCandidates FailureReason = "no_candidates"
	ReasonEmptyText    FailureReason = "empty_text"
	ReasonRemoteError  FailureReason = "remote_error"
)
