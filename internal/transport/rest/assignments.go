package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/internal/service/assignment"
)

// assignmentService defines the minimal interface needed by AssignmentHandler.
type assignmentService interface {
	Assign(ctx context.Context, input assignment.ChangeInput) (*assignment.Result, error)
	Unassign(ctx context.Context, input assignment.ChangeInput) (*assignment.Result, error)
	TopicLogs(ctx context.Context, topicID uuid.UUID) (*domain.TopicLogGroup, error)
	UnassignedLogs(ctx context.Context) (map[uuid.UUID]domain.TopicLogGroup, error)
}

// AssignmentHandler serves assignment REST endpoints.
type AssignmentHandler struct {
	svc assignmentService
	log *slog.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(svc assignmentService, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, log: logger.With("handler", "assignment")}
}

type changeRequest struct {
	JobTitles []string `json:"jobTitles"`
	UserIDs   []string `json:"userIds"`
}

func (c changeRequest) toInput(topicID uuid.UUID) (assignment.ChangeInput, error) {
	userIDs := make([]uuid.UUID, 0, len(c.UserIDs))
	for _, raw := range c.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return assignment.ChangeInput{}, err
		}
		userIDs = append(userIDs, id)
	}
	return assignment.ChangeInput{
		TopicID:   topicID,
		JobTitles: c.JobTitles,
		UserIDs:   userIDs,
	}, nil
}

type changeResponse struct {
	Requested int `json:"requested"`
	Changed   int `json:"changed"`
}

// Assign handles POST /api/topics/{id}/assign.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.svc.Assign)
}

// Unassign handles POST /api/topics/{id}/unassign.
func (h *AssignmentHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.svc.Unassign)
}

func (h *AssignmentHandler) change(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, input assignment.ChangeInput) (*assignment.Result, error),
) {
	topicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(topicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := op(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, changeResponse{
		Requested: result.Requested,
		Changed:   result.Changed,
	})
}

// TopicLogs handles GET /api/topics/{id}/assignment-logs.
func (h *AssignmentHandler) TopicLogs(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	group, err := h.svc.TopicLogs(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

// UnassignedLogs handles GET /api/assignment-logs/unassigned: grouped
// history for every currently unassigned topic, keyed by topic id.
func (h *AssignmentHandler) UnassignedLogs(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.UnassignedLogs(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make(map[string]domain.TopicLogGroup, len(groups))
	for id, group := range groups {
		out[id.String()] = group
	}

	writeJSON(w, http.StatusOK, out)
}
