package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/service/progress"
)

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	RecordAttempt(ctx context.Context, input progress.AttemptInput) (*progress.AttemptResult, error)
	UserProgress(ctx context.Context) ([]progress.TopicProgress, error)
	Summary(ctx context.Context) ([]progress.UserSummary, error)
}

// ProgressHandler serves quiz progress REST endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type attemptRequest struct {
	TopicID string   `json:"topicId"`
	Answers []string `json:"answers"`
}

type attemptResponse struct {
	Passed    bool `json:"passed"`
	Correct   int  `json:"correct"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
	Attempts  int  `json:"attempts"`
}

type topicProgressResponse struct {
	Topic     topicResponse `json:"topic"`
	Completed bool          `json:"completed"`
	Attempts  int           `json:"attempts"`
}

// RecordAttempt handles POST /api/progress/attempts. The verdict comes
// back in the response; the client never submits one.
func (h *ProgressHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	result, err := h.svc.RecordAttempt(r.Context(), progress.AttemptInput{
		TopicID: topicID,
		Answers: req.Answers,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, attemptResponse{
		Passed:    result.Passed,
		Correct:   result.Correct,
		Total:     result.Total,
		Completed: result.Progress.Completed,
		Attempts:  result.Progress.Attempts,
	})
}

// UserProgress handles GET /api/progress: the caller's state on every
// topic visible to them.
func (h *ProgressHandler) UserProgress(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.UserProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]topicProgressResponse, 0, len(items))
	for i := range items {
		out = append(out, topicProgressResponse{
			Topic:     toTopicResponse(&items[i].Topic),
			Completed: items[i].Completed,
			Attempts:  items[i].Attempts,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// Summary handles GET /api/progress/summary: the admin matrix of every
// active user against every topic.
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
