package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetTopicByTitle(ctx context.Context, title string) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	VisibleTopics(ctx context.Context) ([]domain.Topic, error)
	AssignedTopics(ctx context.Context) ([]domain.Topic, error)
	UnassignedTopics(ctx context.Context) ([]domain.Topic, error)
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type sectionsRequest struct {
	Objective        string `json:"objective"`
	ProcessExplained string `json:"processExplained"`
	TaskBreakdown    string `json:"taskBreakdown"`
	SelfCheck        string `json:"selfCheck"`
}

func (s sectionsRequest) toDomain() domain.Sections {
	return domain.Sections{
		Objective: s.Objective,
		Process:   s.ProcessExplained,
		Task:      s.TaskBreakdown,
		SelfCheck: s.SelfCheck,
	}
}

type quizItemRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type topicRequest struct {
	Title    string               `json:"title"`
	Sections sectionsRequest      `json:"sections"`
	ImageURL *string              `json:"imageUrl"`
	Images   domain.SectionImages `json:"images"`
	Quiz     []quizItemRequest    `json:"quiz"`
}

func (t topicRequest) quizItems() []domain.QuizItem {
	items := make([]domain.QuizItem, 0, len(t.Quiz))
	for _, q := range t.Quiz {
		items = append(items, domain.QuizItem{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return items
}

// quizItemResponse omits the correct answer: attempts are scored server
// side and answers reach admins through CSV export only.
type quizItemResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type topicResponse struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Content    string               `json:"content"`
	ImageURL   *string              `json:"imageUrl,omitempty"`
	Images     domain.SectionImages `json:"images"`
	Quiz       []quizItemResponse   `json:"quiz"`
	JobTitles  []string             `json:"jobTitles"`
	AssignedTo []string             `json:"assignedTo"`
	Version    int64                `json:"version"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	quiz := make([]quizItemResponse, 0, len(t.Quiz))
	for _, q := range t.Quiz {
		quiz = append(quiz, quizItemResponse{Question: q.Question, Options: q.Options})
	}
	assigned := make([]string, 0, len(t.AssignedTo))
	for _, id := range t.AssignedTo {
		assigned = append(assigned, id.String())
	}
	return topicResponse{
		ID:         t.ID.String(),
		Title:      t.Title,
		Content:    t.Content,
		ImageURL:   t.ImageURL,
		Images:     t.Images,
		Quiz:       quiz,
		JobTitles:  t.JobTitles,
		AssignedTo: assigned,
		Version:    t.Version,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toTopicResponses(topics []domain.Topic) []topicResponse {
	out := make([]topicResponse, 0, len(topics))
	for i := range topics {
		out = append(out, toTopicResponse(&topics[i]))
	}
	return out
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		Title:    req.Title,
		Sections: req.Sections.toDomain(),
		ImageURL: req.ImageURL,
		Images:   req.Images,
		Quiz:     req.quizItems(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(created))
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	found, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(found))
}

// Search handles GET /api/topics/search?title=: exact title lookup,
// case-insensitive.
func (h *TopicHandler) Search(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	found, err := h.svc.GetTopicByTitle(r.Context(), title)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(found))
}

// Update handles PUT /api/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTopic(r.Context(), topic.UpdateTopicInput{
		TopicID:  id,
		Title:    req.Title,
		Sections: req.Sections.toDomain(),
		ImageURL: req.ImageURL,
		Images:   req.Images,
		Quiz:     req.quizItems(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(updated))
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/topics. Admin only.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponses(topics))
}

// Visible handles GET /api/topics/visible: topics the caller can see.
func (h *TopicHandler) Visible(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.VisibleTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponses(topics))
}

// Assigned handles GET /api/topics/assigned: topics with any assignment.
func (h *TopicHandler) Assigned(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.AssignedTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponses(topics))
}

// Unassigned handles GET /api/topics/unassigned: topics with no assignment.
func (h *TopicHandler) Unassigned(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.UnassignedTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponses(topics))
}
