package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	PendingUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	AddUser(ctx context.Context, input user.AddUserInput) (*domain.User, error)
	Approve(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Reactivate(ctx context.Context, userID uuid.UUID, code string) (*domain.User, error)
	ResetPassword(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ChangeJobTitles(ctx context.Context, input user.ChangeJobTitlesInput) (*domain.User, error)
	JobTitleLogs(ctx context.Context, userID uuid.UUID) ([]domain.JobTitleLog, error)
}

// UserHandler serves user management REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Mobile             string     `json:"mobile"`
	JobTitles          []string   `json:"jobTitles"`
	IsAdmin            bool       `json:"isAdmin"`
	Active             bool       `json:"active"`
	Approved           bool       `json:"approved"`
	MustChangePassword bool       `json:"mustChangePassword"`
	ApprovedBy         *string    `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	DeactivatedBy      *string    `json:"deactivatedBy,omitempty"`
	DeactivatedAt      *time.Time `json:"deactivatedAt,omitempty"`
	ReactivatedBy      *string    `json:"reactivatedBy,omitempty"`
	ReactivatedAt      *time.Time `json:"reactivatedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID.String(),
		Name:               u.Name,
		Mobile:             u.Mobile,
		JobTitles:          u.JobTitles,
		IsAdmin:            u.IsAdmin,
		Active:             u.Active,
		Approved:           u.IsApproved(),
		MustChangePassword: u.MustChangePassword,
		ApprovedBy:         u.ApprovedBy,
		ApprovedAt:         u.ApprovedAt,
		DeactivatedBy:      u.DeactivatedBy,
		DeactivatedAt:      u.DeactivatedAt,
		ReactivatedBy:      u.ReactivatedBy,
		ReactivatedAt:      u.ReactivatedAt,
		CreatedAt:          u.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

type addUserRequest struct {
	Name      string   `json:"name"`
	Mobile    string   `json:"mobile"`
	JobTitles []string `json:"jobTitles"`
	IsAdmin   bool     `json:"isAdmin"`
}

type reactivateRequest struct {
	Code string `json:"code"`
}

type jobTitlesRequest struct {
	JobTitles []string `json:"jobTitles"`
}

type jobTitleLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ChangedBy string    `json:"changedBy"`
	JobTitles []string  `json:"jobTitles"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/users?active=&approved=. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.UserFilter
	if v := r.URL.Query().Get("active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Active = &b
		}
	}
	if v := r.URL.Query().Get("approved"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Approved = &b
		}
	}

	users, err := h.svc.ListUsers(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// Pending handles GET /api/users/pending: accounts awaiting approval.
func (h *UserHandler) Pending(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.PendingUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// Get handles GET /api/users/{id}. Self or admin.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	found, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(found))
}

// Add handles POST /api/users: admin creates a pre-approved account.
func (h *UserHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddUser(r.Context(), user.AddUserInput{
		Name:      req.Name,
		Mobile:    req.Mobile,
		JobTitles: req.JobTitles,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(created))
}

// Approve handles POST /api/users/{id}/approve.
func (h *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Approve)
}

// Deactivate handles POST /api/users/{id}/deactivate.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Deactivate)
}

// ResetPassword handles POST /api/users/{id}/reset-password: forces the
// account back to the default password.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.ResetPassword)
}

func (h *UserHandler) lifecycle(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID uuid.UUID) (*domain.User, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	updated, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// Reactivate handles POST /api/users/{id}/reactivate. The body carries the
// reactivation code checked against configuration.
func (h *UserHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req reactivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Reactivate(r.Context(), id, req.Code)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// ChangeJobTitles handles PUT /api/users/{id}/job-titles.
func (h *UserHandler) ChangeJobTitles(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req jobTitlesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.ChangeJobTitles(r.Context(), user.ChangeJobTitlesInput{
		UserID:    id,
		JobTitles: req.JobTitles,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// JobTitleLogs handles GET /api/users/{id}/job-title-logs.
func (h *UserHandler) JobTitleLogs(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	logs, err := h.svc.JobTitleLogs(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]jobTitleLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, jobTitleLogResponse{
			ID:        l.ID.String(),
			UserID:    l.UserID.String(),
			ChangedBy: l.ChangedBy,
			JobTitles: l.JobTitles,
			CreatedAt: l.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
