package rest

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/opsacademy/training-backend/internal/domain"
	"github.com/opsacademy/training-backend/internal/service/impex"
)

// impexService defines the minimal interface needed by ImpexHandler.
type impexService interface {
	ImportRows(ctx context.Context, rows []impex.Row) (*impex.ImportResult, error)
	ExportRows(ctx context.Context) ([]impex.Row, error)
	ListContentChangeLogs(ctx context.Context, page, limit int) (*impex.LogPage, error)
}

// ImpexHandler serves the CSV import/export endpoints and the content
// change history. CSV is parsed and written at this boundary; the service
// works with plain column-keyed rows.
type ImpexHandler struct {
	svc impexService
	log *slog.Logger
}

// NewImpexHandler creates an ImpexHandler.
func NewImpexHandler(svc impexService, logger *slog.Logger) *ImpexHandler {
	return &ImpexHandler{svc: svc, log: logger.With("handler", "impex")}
}

// Import handles POST /api/topics/import. The body is either a raw CSV
// document or a multipart form with the document in the "file" field. The
// first record is the header; unknown columns are ignored.
func (h *ImpexHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := importBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing csv payload")
		return
	}
	defer body.Close() //nolint:errcheck

	rows, err := readCSVRows(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed csv: "+err.Error())
		return
	}

	result, err := h.svc.ImportRows(r.Context(), rows)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Export handles GET /api/topics/export: every topic as one CSV row.
func (h *ImpexHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ExportRows(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="topics.csv"`)

	cols := impex.Columns()
	cw := csv.NewWriter(w)
	cw.Write(cols) //nolint:errcheck
	for _, row := range rows {
		record := make([]string, 0, len(cols))
		for _, col := range cols {
			record = append(record, row[col])
		}
		cw.Write(record) //nolint:errcheck
	}
	cw.Flush()
}

type contentLogResponse struct {
	ID        string               `json:"id"`
	TopicID   string               `json:"topicId"`
	Title     string               `json:"title"`
	Updated   domain.UpdatedFields `json:"updated"`
	UpdatedBy string               `json:"updatedBy"`
	CreatedAt time.Time            `json:"createdAt"`
}

type contentLogPageResponse struct {
	Logs       []contentLogResponse `json:"logs"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"totalPages"`
}

// ContentLogs handles GET /api/content-logs?page=&limit=.
func (h *ImpexHandler) ContentLogs(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	result, err := h.svc.ListContentChangeLogs(r.Context(), page, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	logs := make([]contentLogResponse, 0, len(result.Logs))
	for _, l := range result.Logs {
		logs = append(logs, contentLogResponse{
			ID:        l.ID.String(),
			TopicID:   l.TopicID.String(),
			Title:     l.Title,
			Updated:   l.Updated,
			UpdatedBy: l.UpdatedBy,
			CreatedAt: l.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, contentLogPageResponse{
		Logs:       logs,
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func importBody(r *http.Request) (io.ReadCloser, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return r.Body, nil
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	return file, nil
}

// readCSVRows parses a CSV document into column-keyed rows. Header names
// are matched case-insensitively; ragged records are tolerated because
// spreadsheet exports frequently drop trailing empty cells.
func readCSVRows(body io.Reader) ([]impex.Row, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	rows := []impex.Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := impex.Row{}
		for i, value := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
