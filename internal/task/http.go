package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Handler serves the JSON task API over a List.
type Handler struct {
	list *List
}

func NewHandler(list *List) *Handler {
	return &Handler{list: list}
}

// taskPayload is the wire form of a Task. Due dates travel as MM/DD/YYYY
// text, the external date format of the module.
type taskPayload struct {
	ID          TaskID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

func payloadFor(t *Task) taskPayload {
	return taskPayload{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
		DueDate:     t.DueDate().Format(debugDateLayout),
	}
}

// taskUpsert carries the mutable fields of a create or patch request. nil
// pointer => "no change".
type taskUpsert struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// writeTaskErr maps the task error taxonomy onto HTTP statuses: invalid
// input 400, missing/empty/out-of-range 404, duplicate 409.
func writeTaskErr(w http.ResponseWriter, err error) {
	var (
		invalidTitle *InvalidTitleError
		invalidStat  *InvalidStatusError
		invalidDue   *InvalidDueDateError
		empty        *EmptyListError
		notFound     *NotFoundError
		indexRange   *IndexRangeError
		duplicate    *DuplicateTaskError
	)
	switch {
	case errors.As(err, &invalidTitle), errors.As(err, &invalidStat), errors.As(err, &invalidDue):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &empty), errors.As(err, &notFound), errors.As(err, &indexRange):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.As(err, &duplicate):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

// TasksRoot handles /api/tasks (collection).
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		members := h.list.All()
		out := make([]taskPayload, 0, len(members))
		for _, t := range members {
			out = append(out, payloadFor(t))
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var in taskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		if in.Title == nil {
			writeErr(w, http.StatusBadRequest, `missing field "title"`)
			return
		}

		opts := []Option{}
		if in.Description != nil {
			opts = append(opts, WithDescription(*in.Description))
		}
		if in.Status != nil {
			opts = append(opts, WithStatus(*in.Status))
		}
		if in.DueDate != nil {
			opts = append(opts, WithDueDateText(*in.DueDate))
		}

		t, err := New(*in.Title, opts...)
		if err != nil {
			writeTaskErr(w, err)
			return
		}
		if err := h.list.Add(t); err != nil {
			writeTaskErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, payloadFor(t))

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// TasksSub handles /api/tasks/{id}.
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	tail = strings.Trim(tail, "/")
	if tail == "" || strings.Contains(tail, "/") {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	id, err := ParseTaskID(tail)
	if err != nil {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := h.list.Get(id)
		if err != nil {
			writeTaskErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payloadFor(t))

	case http.MethodPatch:
		var in taskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		if err := h.applyPatch(id, in); err != nil {
			writeTaskErr(w, err)
			return
		}
		t, err := h.list.Get(id)
		if err != nil {
			writeTaskErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payloadFor(t))

	case http.MethodDelete:
		if err := h.list.Delete(id); err != nil {
			writeTaskErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// applyPatch applies the requested field updates one at a time through the
// list's update operations. Each field either fully commits or leaves the
// task unchanged with the setter's error.
func (h *Handler) applyPatch(id TaskID, in taskUpsert) error {
	if in.Title != nil {
		if err := h.list.SetTitle(id, *in.Title); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := h.list.SetDescription(id, *in.Description); err != nil {
			return err
		}
	}
	if in.Status != nil {
		if err := h.list.SetStatus(id, *in.Status); err != nil {
			return err
		}
	}
	if in.DueDate != nil {
		if err := h.list.SetDueDateText(id, *in.DueDate); err != nil {
			return err
		}
	}
	return nil
}
