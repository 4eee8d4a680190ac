package serverapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cmorman89/the-cruddy-task-list/internal/config"
	"github.com/cmorman89/the-cruddy-task-list/internal/httpmw"
	"github.com/cmorman89/the-cruddy-task-list/internal/task"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger
}

// NewHandler builds the full HTTP handler: task routes over a freshly seeded
// list, plus health, wrapped in the middleware chain.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	list, err := SeedList(opts.Config.Seed)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "cruddy-task-list",
			"tasks":   list.Len(),
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	taskHandler := task.NewHandler(list)
	mux.HandleFunc("/api/tasks", taskHandler.TasksRoot)
	mux.HandleFunc("/api/tasks/", taskHandler.TasksSub)

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

// SeedList constructs the boot task list from config seeds, in order. Seeds
// go through the validated constructors, so a bad field aborts startup with
// the field's own error.
func SeedList(seeds []config.SeedTask) (*task.List, error) {
	list := task.NewList()
	for i, seed := range seeds {
		opts := []task.Option{}
		if seed.Description != "" {
			opts = append(opts, task.WithDescription(seed.Description))
		}
		if strings.TrimSpace(seed.Status) != "" {
			opts = append(opts, task.WithStatus(seed.Status))
		}
		if strings.TrimSpace(seed.DueDate) != "" {
			opts = append(opts, task.WithDueDateText(seed.DueDate))
		}
		t, err := task.New(seed.Title, opts...)
		if err != nil {
			return nil, fmt.Errorf("seed task %d: %w", i, err)
		}
		if err := list.Add(t); err != nil {
			return nil, fmt.Errorf("seed task %d: %w", i, err)
		}
	}
	return list, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
