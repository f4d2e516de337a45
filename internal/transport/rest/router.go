package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Topics      *TopicHandler
	Assignments *AssignmentHandler
	Users       *UserHandler
	Progress    *ProgressHandler
	Impex       *ImpexHandler
	Health      *HealthHandler
}

// NewRouter builds the HTTP route table. Authentication happens in
// middleware; authorization lives in the services, so the router stays a
// plain route list.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/change-password", h.Auth.ChangePassword)

	mux.HandleFunc("POST /api/topics", h.Topics.Create)
	mux.HandleFunc("GET /api/topics", h.Topics.List)
	mux.HandleFunc("GET /api/topics/search", h.Topics.Search)
	mux.HandleFunc("GET /api/topics/visible", h.Topics.Visible)
	mux.HandleFunc("GET /api/topics/assigned", h.Topics.Assigned)
	mux.HandleFunc("GET /api/topics/unassigned", h.Topics.Unassigned)
	mux.HandleFunc("GET /api/topics/export", h.Impex.Export)
	mux.HandleFunc("POST /api/topics/import", h.Impex.Import)
	mux.HandleFunc("GET /api/topics/{id}", h.Topics.Get)
	mux.HandleFunc("PUT /api/topics/{id}", h.Topics.Update)
	mux.HandleFunc("DELETE /api/topics/{id}", h.Topics.Delete)

	mux.HandleFunc("POST /api/topics/{id}/assign", h.Assignments.Assign)
	mux.HandleFunc("POST /api/topics/{id}/unassign", h.Assignments.Unassign)
	mux.HandleFunc("GET /api/topics/{id}/assignment-logs", h.Assignments.TopicLogs)
	mux.HandleFunc("GET /api/assignment-logs/unassigned", h.Assignments.UnassignedLogs)

	mux.HandleFunc("GET /api/content-logs", h.Impex.ContentLogs)

	mux.HandleFunc("POST /api/users", h.Users.Add)
	mux.HandleFunc("GET /api/users", h.Users.List)
	mux.HandleFunc("GET /api/users/pending", h.Users.Pending)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("POST /api/users/{id}/approve", h.Users.Approve)
	mux.HandleFunc("POST /api/users/{id}/deactivate", h.Users.Deactivate)
	mux.HandleFunc("POST /api/users/{id}/reactivate", h.Users.Reactivate)
	mux.HandleFunc("POST /api/users/{id}/reset-password", h.Users.ResetPassword)
	mux.HandleFunc("PUT /api/users/{id}/job-titles", h.Users.ChangeJobTitles)
	mux.HandleFunc("GET /api/users/{id}/job-title-logs", h.Users.JobTitleLogs)

	mux.HandleFunc("POST /api/progress/attempts", h.Progress.RecordAttempt)
	mux.HandleFunc("GET /api/progress", h.Progress.UserProgress)
	mux.HandleFunc("GET /api/progress/summary", h.Progress.Summary)

	return mux
}
