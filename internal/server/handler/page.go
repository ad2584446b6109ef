// Package handler provides the HTTP handlers for the review web UI.
package handler

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/internal/server/flash"
	"github.com/sevigo/ps-reviewer/internal/server/render"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
)

//go:embed templates/upload.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/upload.html"))

// MsgInternalError is shown when a request fails outside the workflow.
const MsgInternalError = "An internal error occurred. Please try again."

const (
	pageTitle          = core.Language + " Code Reviewer"
	formField          = "file"
	multipartMaxMemory = 32 << 20
)

var errTooLarge = errors.New("request body too large")

// pageData is the view model for templates/upload.html.
type pageData struct {
	Title             string
	Language          string
	AllowedExtensions string
	Accept            string
	Enhanced          bool
	Messages          []flash.Message

	Success    bool
	Failed     bool
	Filename   string
	ReviewHTML template.HTML
}

// PageHandler serves the upload form and processes uploads.
type PageHandler struct {
	cfg      *config.Config
	workflow core.SubmissionHandler
	flashes  *flash.Store
	markdown *render.Markdown
	tracker  telemetry.Tracker
	logger   *slog.Logger
}

// NewPageHandler creates the page handler. A nil tracker disables telemetry.
func NewPageHandler(cfg *config.Config, workflow core.SubmissionHandler, flashes *flash.Store, markdown *render.Markdown, tracker telemetry.Tracker, logger *slog.Logger) *PageHandler {
	if tracker == nil {
		tracker = telemetry.Nop{}
	}
	return &PageHandler{
		cfg:      cfg,
		workflow: workflow,
		flashes:  flashes,
		markdown: markdown,
		tracker:  tracker,
		logger:   logger,
	}
}

// TooLargeMessage is the notice for an upload over limit bytes.
func TooLargeMessage(limit int64) string {
	const mb = 1 << 20
	if limit >= mb && limit%mb == 0 {
		return fmt.Sprintf("File too large. Maximum size is %dMB.", limit/mb)
	}
	if limit >= 1<<10 && limit%(1<<10) == 0 {
		return fmt.Sprintf("File too large. Maximum size is %dKB.", limit>>10)
	}
	return fmt.Sprintf("File too large. Maximum size is %d bytes.", limit)
}

// Index renders the empty upload form with any pending notices.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("user accessed homepage")
	h.render(w, h.basePage(w, r))
}

// Upload runs the workflow on the posted file. Validation failures are
// flashed and redirected to the form; a review, successful or not, is
// rendered inline.
func (h *PageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("file upload request received")

	sub, err := h.readSubmission(w, r)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			h.logger.Warn("upload rejected", "error", err, "limit", h.cfg.Server.MaxUploadBytes)
			h.redirectWithNotice(w, r, TooLargeMessage(h.cfg.Server.MaxUploadBytes))
			return
		}
		err = review.NewProcessingError(err)
	} else {
		var outcome *core.ReviewOutcome
		outcome, err = h.workflow.Handle(r.Context(), sub)
		if err == nil {
			h.renderOutcome(w, r, outcome)
			return
		}
	}

	var vErr *review.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Kind == review.KindProcessing {
			h.logger.Error("error processing upload", "error", err)
			h.tracker.TrackException(err)
		}
		h.redirectWithNotice(w, r, vErr.Message)
		return
	}
	h.logger.Error("unexpected upload error", "error", err)
	h.tracker.TrackException(err)
	h.redirectWithNotice(w, r, MsgInternalError)
}

// readSubmission returns nil when the request has no file part and a
// submission with an empty name when the part carried no filename.
func (h *PageHandler) readSubmission(w http.ResponseWriter, r *http.Request) (*core.Submission, error) {
	limit := h.cfg.Server.MaxUploadBytes
	if r.ContentLength > limit {
		return nil, errTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, errTooLarge
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			return nil, nil
		default:
			return nil, fmt.Errorf("failed to parse upload: %w", err)
		}
	}

	file, header, err := r.FormFile(formField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			if _, ok := r.MultipartForm.Value[formField]; ok {
				return &core.Submission{}, nil
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return &core.Submission{Filename: header.Filename, Data: data}, nil
}

func (h *PageHandler) renderOutcome(w http.ResponseWriter, r *http.Request, outcome *core.ReviewOutcome) {
	page := h.basePage(w, r)
	page.Success = true
	page.Failed = outcome.Result.IsError()
	page.Filename = outcome.Filename

	reviewHTML, err := h.markdown.HTML(outcome.Result.Text)
	if err != nil {
		h.logger.Warn("failed to render review markdown, showing plain text", "error", err)
		reviewHTML = template.HTML("<pre>" + template.HTMLEscapeString(outcome.Result.Text) + "</pre>") //nolint:gosec // escaped above
	}
	page.ReviewHTML = reviewHTML

	h.render(w, page)
}

func (h *PageHandler) basePage(w http.ResponseWriter, r *http.Request) pageData {
	accept := make([]string, 0, len(core.AllowedExtensions))
	for _, ext := range core.AllowedExtensions {
		accept = append(accept, "."+ext)
	}
	return pageData{
		Title:             pageTitle,
		Language:          core.Language,
		AllowedExtensions: core.AllowedExtensionList(),
		Accept:            strings.Join(accept, ","),
		Enhanced:          h.cfg.Features.EnhancedAnalysis(),
		Messages:          h.flashes.Pop(w, r),
	}
}

func (h *PageHandler) render(w http.ResponseWriter, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, page); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}

func (h *PageHandler) redirectWithNotice(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.flashes.Add(w, r, flash.CategoryError, message); err != nil {
		h.logger.Error("failed to store notice", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
