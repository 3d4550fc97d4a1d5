// Package web serves the browser form for requesting a roadmap.
package web

import (
	"bytes"
	"embed"
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/roadmap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

const (
	subjectWarning   = "Please enter a subject."
	audioUnavailable = "The roadmap is ready, but the audio version could not be created."
	pdfUnavailable   = "The roadmap is ready, but the PDF could not be created."
)

type formValues struct {
	Grade        string
	Subject      string
	DailyMinutes int
	WantsAudio   bool
	WantsVisuals bool
}

type page struct {
	Grades     []string
	MinMinutes int
	MaxMinutes int
	Form       formValues
	Warning    string
	Error      string
	Roadmap    template.HTML
	AudioURI   template.URL
}

type Handler struct {
	service roadmap.Service
}

func NewHandler(s roadmap.Service) *Handler {
	return &Handler{service: s}
}

func newPage(form formValues) *page {
	grades := make([]string, len(roadmap.AllGrades))
	for i, g := range roadmap.AllGrades {
		grades[i] = string(g)
	}
	return &page{
		Grades:     grades,
		MinMinutes: roadmap.MinDailyMinutes,
		MaxMinutes: roadmap.MaxDailyMinutes,
		Form:       form,
	}
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, newPage(formValues{
		Grade:        string(roadmap.AllGrades[0]),
		DailyMinutes: roadmap.MinDailyMinutes,
	}))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := readForm(r)
	p := newPage(form)

	// A blank subject never reaches the model.
	if strings.TrimSpace(form.Subject) == "" {
		p.Warning = subjectWarning
		h.render(w, r, http.StatusOK, p)
		return
	}

	format := roadmap.FormatText
	switch {
	case r.PostForm.Get("action") == "pdf":
		format = roadmap.FormatPDF
	case form.WantsAudio:
		format = roadmap.FormatAudio
	}

	req := roadmap.Request{
		Grade:        roadmap.Grade(form.Grade),
		Subject:      form.Subject,
		DailyMinutes: form.DailyMinutes,
		WantsAudio:   form.WantsAudio,
		WantsVisuals: form.WantsVisuals,
	}

	out, err := h.service.Produce(r.Context(), req, format)
	if err != nil {
		var vErr *roadmap.ValidationError
		switch {
		case errors.As(err, &vErr):
			p.Warning = vErr.Message
			h.render(w, r, http.StatusOK, p)
			return
		case errors.Is(err, roadmap.ErrArtifact) && out != nil:
			log.WithError(err).Warn("Showing roadmap without artifact")
			p.Error = audioUnavailable
			if format == roadmap.FormatPDF {
				p.Error = pdfUnavailable
			}
		default:
			log.WithError(err).Error("Failed to produce roadmap")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	if out.Artifact != nil && format == roadmap.FormatPDF {
		config.Attachment(w, out.Artifact.ContentType, out.Artifact.Filename, out.Artifact.Body)
		return
	}

	if out.Result.Failed {
		p.Error = out.Result.Text
		h.render(w, r, http.StatusOK, p)
		return
	}

	p.Roadmap = template.HTML(renderRoadmap(out.Result.Text))
	if out.Artifact != nil {
		p.AudioURI = template.URL("data:" + out.Artifact.ContentType + ";base64," +
			base64.StdEncoding.EncodeToString(out.Artifact.Body))
	}
	h.render(w, r, http.StatusOK, p)
}

func readForm(r *http.Request) formValues {
	minutes, err := strconv.Atoi(r.PostForm.Get("daily_minutes"))
	if err != nil {
		minutes = roadmap.MinDailyMinutes
	}
	return formValues{
		Grade:        strings.TrimSpace(r.PostForm.Get("grade")),
		Subject:      r.PostForm.Get("subject"),
		DailyMinutes: minutes,
		WantsAudio:   r.PostForm.Get("wants_audio") != "",
		WantsVisuals: r.PostForm.Get("wants_visuals") != "",
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p *page) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
