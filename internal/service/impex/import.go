package impex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/opsacademy/training-backend/internal/domain"
)

// RowError describes why a single row was skipped. Line is 1-based over the
// data rows, header excluded.
type RowError struct {
	Line   int    `json:"line"`
	Title  string `json:"title,omitempty"`
	Reason string `json:"reason"`
}

// ImportResult aggregates the per-row outcomes of one import.
type ImportResult struct {
	Created   int        `json:"created"`
	Updated   int        `json:"updated"`
	Unchanged int        `json:"unchanged"`
	Failed    int        `json:"failed"`
	Errors    []RowError `json:"errors"`
}

// ImportRows reconciles external rows against stored topics. Rows are
// matched to topics by title (case-insensitive). A matched row persists and
// logs only the fields that actually differ; an unmatched row creates a new
// unassigned topic and logs both fields with empty "from" values. Processing
// is best-effort per row, and the accumulated change log entries are written
// as one batch after the loop: a failed batch write leaves the upserted
// topics in place. Admin only.
func (s *Service) ImportRows(ctx context.Context, rows []Row) (*ImportResult, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, domain.NewValidationError("rows", "at least one row is required")
	}
	if len(rows) > s.cfg.ImportMaxRows {
		return nil, domain.NewValidationError("rows",
			fmt.Sprintf("row count %d exceeds the limit of %d", len(rows), s.cfg.ImportMaxRows))
	}

	result := &ImportResult{Errors: []RowError{}}
	var pending []domain.ContentChangeLog

	for i, row := range rows {
		line := i + 1

		entry, outcome, rowErr := s.importRow(ctx, row, admin.Name)
		if rowErr != nil {
			rowErr.Line = line
			result.Failed++
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		switch outcome {
		case outcomeCreated:
			result.Created++
		case outcomeUpdated:
			result.Updated++
		case outcomeUnchanged:
			result.Unchanged++
		}
		if entry != nil {
			pending = append(pending, *entry)
		}
	}

	if len(pending) > 0 {
		if err := s.contentLogs.CreateBatch(ctx, pending); err != nil {
			// Topic upserts are already durable; the history batch is
			// best-effort and its loss is reported, not propagated.
			s.log.ErrorContext(ctx, "content change log batch failed",
				slog.Int("entries", len(pending)),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "import finished",
		slog.Int("rows", len(rows)),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
		slog.String("imported_by", admin.Name),
	)

	return result, nil
}

type rowOutcome int

const (
	outcomeCreated rowOutcome = iota
	outcomeUpdated
	outcomeUnchanged
)

// importRow upserts a single row and returns the change log entry to queue,
// if any. The returned RowError has its Line filled in by the caller.
func (s *Service) importRow(ctx context.Context, row Row, actor string) (*domain.ContentChangeLog, rowOutcome, *RowError) {
	title := strings.TrimSpace(row[ColTitle])
	if title == "" {
		return nil, 0, &RowError{Reason: "missing title"}
	}

	content := domain.RenderContent(row.sections())
	quiz := row.quiz()

	existing, err := s.topics.GetByTitle(ctx, title)
	switch {
	case err == nil:
		return s.updateFromRow(ctx, existing, content, quiz, actor, title)
	case errors.Is(err, domain.ErrNotFound):
		return s.createFromRow(ctx, title, content, quiz, actor)
	default:
		return nil, 0, &RowError{Title: title, Reason: fmt.Sprintf("lookup failed: %v", err)}
	}
}

func (s *Service) createFromRow(ctx context.Context, title, content string, quiz []domain.QuizItem, actor string) (*domain.ContentChangeLog, rowOutcome, *RowError) {
	created, err := s.topics.Create(ctx, &domain.Topic{
		Title:      title,
		Content:    content,
		Quiz:       quiz,
		JobTitles:  []string{},
		AssignedTo: []uuid.UUID{},
	})
	if err != nil {
		return nil, 0, &RowError{Title: title, Reason: fmt.Sprintf("create failed: %v", err)}
	}

	// Creation always records both fields, even when empty.
	entry := &domain.ContentChangeLog{
		TopicID: created.ID,
		Title:   created.Title,
		Updated: domain.UpdatedFields{
			Content: &domain.ContentChange{From: "", To: content},
			Quiz:    &domain.QuizChange{From: []domain.QuizItem{}, To: quiz},
		},
		UpdatedBy: actor,
	}
	return entry, outcomeCreated, nil
}

func (s *Service) updateFromRow(ctx context.Context, existing *domain.Topic, content string, quiz []domain.QuizItem, actor, title string) (*domain.ContentChangeLog, rowOutcome, *RowError) {
	updated := domain.UpdatedFields{}
	if existing.Content != content {
		updated.Content = &domain.ContentChange{From: existing.Content, To: content}
	}
	if !domain.QuizEqual(existing.Quiz, quiz) {
		updated.Quiz = &domain.QuizChange{From: existing.Quiz, To: quiz}
	}
	if updated.IsEmpty() {
		return nil, outcomeUnchanged, nil
	}

	existing.Content = content
	existing.Quiz = quiz

	saved, err := s.topics.Update(ctx, existing)
	if err != nil {
		return nil, 0, &RowError{Title: title, Reason: fmt.Sprintf("update failed: %v", err)}
	}

	entry := &domain.ContentChangeLog{
		TopicID:   saved.ID,
		Title:     saved.Title,
		Updated:   updated,
		UpdatedBy: actor,
	}
	return entry, outcomeUpdated, nil
}
