package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonReq(method, path string, body any) *http.Request {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) taskPayload {
	t.Helper()
	var out taskPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTasksRoot_Create(t *testing.T) {
	h := NewHandler(NewList())

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", map[string]any{
		"title":       "Take out trash",
		"description": "before 8am",
		"status":      "IN PROGRESS",
		"due_date":    "7/4/2026",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeTask(t, rec)
	assert.Equal(t, "Take out trash", got.Title)
	assert.Equal(t, "before 8am", got.Description)
	assert.Equal(t, "in progress", got.Status)
	assert.Equal(t, "07/04/2026", got.DueDate)
}

func TestTasksRoot_CreateInvalid(t *testing.T) {
	h := NewHandler(NewList())

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"description": "no title"}},
		{"blank title", map[string]any{"title": "   "}},
		{"bad status", map[string]any{"title": "A", "status": "finished"}},
		{"bad due date", map[string]any{"title": "A", "due_date": "2026-01-01"}},
		{"impossible due date", map[string]any{"title": "A", "due_date": "02/30/2026"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", tc.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", rec.Body.String())
		})
	}
}

func TestTasksRoot_ListOrdered(t *testing.T) {
	h := NewHandler(NewList())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", map[string]any{
			"title": fmt.Sprintf("Task %d", i),
		}))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodGet, "/api/tasks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []taskPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)
	for i, p := range out {
		assert.Equal(t, fmt.Sprintf("Task %d", i), p.Title)
		assert.Equal(t, "pending", p.Status)
	}
}

func TestTasksSub_GetPatchDelete(t *testing.T) {
	h := NewHandler(NewList())

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", map[string]any{"title": "Task"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeTask(t, rec)
	path := fmt.Sprintf("/api/tasks/%s", created.ID)

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeTask(t, rec))

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodPatch, path, map[string]any{
		"status":   "COMPLETED",
		"due_date": "12/31/2026",
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeTask(t, rec)
	assert.Equal(t, "completed", patched.Status)
	assert.Equal(t, "12/31/2026", patched.DueDate)

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodDelete, path, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasksSub_PatchInvalidLeavesTaskUnchanged(t *testing.T) {
	h := NewHandler(NewList())

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", map[string]any{"title": "Task"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeTask(t, rec)
	path := fmt.Sprintf("/api/tasks/%s", created.ID)

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodPatch, path, map[string]any{"status": "done"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeTask(t, rec))
}

func TestTasksSub_NotFoundForms(t *testing.T) {
	h := NewHandler(NewList())

	for _, path := range []string{"/api/tasks/", "/api/tasks/abc", "/api/tasks/1/extra", "/api/tasks/1"} {
		rec := httptest.NewRecorder()
		h.TasksSub(rec, jsonReq(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewHandler(NewList())

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodDelete, "/api/tasks", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodPost, "/api/tasks/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
