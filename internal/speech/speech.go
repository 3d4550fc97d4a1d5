// Package speech turns roadmap text into MP3 audio through a remote
// text-to-speech service.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

// MaxInputChars is the longest input the speech endpoint accepts per call.
const MaxInputChars = 4096

var ErrEmptyText = errors.New("speech: empty text")

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Voice   string
}

type openaiSynthesizer struct {
	client openai.Client
	model  string
	voice  string
}

func NewOpenAISynthesizer(opts Options, reqOpts ...option.RequestOption) Synthesizer {
	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	clientOpts = append(clientOpts, reqOpts...)

	return &openaiSynthesizer{
		client: openai.NewClient(clientOpts...),
		model:  opts.Model,
		voice:  opts.Voice,
	}
}

// Synthesize returns MP3 bytes. Long text is split into chunks that are
// synthesized in order; MP3 frames can be concatenated as-is.
func (s *openaiSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	log := config.WithContext(ctx)

	chunks := SplitText(text, MaxInputChars)
	if len(chunks) == 0 {
		return nil, ErrEmptyText
	}

	var buf bytes.Buffer
	for i, chunk := range chunks {
		resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
			Input:          chunk,
			Model:          openai.SpeechModel(s.model),
			Voice:          openai.AudioSpeechNewParamsVoice(s.voice),
			ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		})
		if err != nil {
			return nil, fmt.Errorf("synthesizing chunk %d/%d: %w", i+1, len(chunks), err)
		}
		err = readAudio(&buf, resp)
		if err != nil {
			return nil, fmt.Errorf("reading audio chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}

	log.Debugf("[SPEECH] Synthesized %d chunks, %d bytes", len(chunks), buf.Len())
	return buf.Bytes(), nil
}

func readAudio(dst io.Writer, resp *http.Response) error {
	defer resp.Body.Close()
	_, err := io.Copy(dst, resp.Body)
	return err
}

// SplitText breaks text into pieces of at most limit runes, preferring to cut
// after a sentence end, then at whitespace. Blank pieces are dropped.
func SplitText(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" || limit <= 0 {
		return nil
	}

	var chunks []string
	for text != "" {
		if utf8.RuneCountInString(text) <= limit {
			chunks = append(chunks, text)
			break
		}

		window := truncateRunes(text, limit)
		cut := lastSentenceEnd(window)
		if cut <= 0 {
			cut = strings.LastIndexFunc(window, unicode.IsSpace)
		}
		if cut <= 0 {
			cut = len(window)
		}

		if piece := strings.TrimSpace(text[:cut]); piece != "" {
			chunks = append(chunks, piece)
		}
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// lastSentenceEnd returns the byte offset just past the last ". ", "! ", "? "
// or newline in s, or -1.
func lastSentenceEnd(s string) int {
	best := strings.LastIndex(s, "\n")
	if best >= 0 {
		best++
	}
	for _, sep := range []string{". ", "! ", "? "} {
		if i := strings.LastIndex(s, sep); i >= 0 && i+1 > best {
			best = i + 1
		}
	}
	return best
}
