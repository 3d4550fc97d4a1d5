package roadmap_test

import (
	"context"
	"sync/atomic"

	"github.com/saulo-duarte/roadmap-lambda/internal/document"
	"github.com/saulo-duarte/roadmap-lambda/internal/roadmap"
)

type fakeProvider struct {
	completion *roadmap.Completion
	err        error
	calls      atomic.Int32
	lastPrompt string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (*roadmap.Completion, error) {
	f.calls.Add(1)
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func (f *fakeProvider) Model() string { return "fake-model" }

func answering(texts ...string) *fakeProvider {
	return &fakeProvider{completion: &roadmap.Completion{Candidates: texts, Model: "fake-model"}}
}

type fakeSynthesizer struct {
	text string
	err  error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.text = text
	if f.err != nil {
		return nil, f.err
	}
	return []byte("ID3" + text), nil
}

type fakeRenderer struct {
	doc document.Document
	err error
}

func (f *fakeRenderer) Render(ctx context.Context, doc document.Document) ([]byte, error) {
	f.doc = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 " + doc.Title), nil
}

func validRequest() roadmap.Request {
	return roadmap.Request{Grade: "5", Subject: "Math", DailyMinutes: 30, WantsAudio: true}
}
