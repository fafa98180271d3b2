package cli

import (
	"fmt"
	"strings"

	"github.com/avdeev/taskdeck/internal/config"
	"github.com/avdeev/taskdeck/internal/logger"
	"github.com/avdeev/taskdeck/internal/storage"
	"github.com/avdeev/taskdeck/internal/store"
	"github.com/avdeev/taskdeck/internal/task"
)

// env bundles the wired-up components a command needs.
type env struct {
	Config  *config.Config
	Store   *store.Store
	Gateway *storage.Gateway
}

// loadEnv reads the config, sets up logging, and loads the persisted
// collection into a fresh store.
func loadEnv() (*env, error) {
	cfg, err := config.LoadOrDefault(config.FileName)
	if err != nil {
		return nil, err
	}
	logger.Setup(logger.ParseLevel(cfg.LogLevel))

	gateway := storage.New(cfg.DataFile)
	s := store.New(cfg.LocaleTag())
	s.Load(gateway.Load())

	return &env{Config: cfg, Store: s, Gateway: gateway}, nil
}

// save persists the full snapshot after a one-shot mutation.
func (e *env) save() error {
	return e.Gateway.Save(e.Store.All())
}

// resolveID expands an id argument to a full task id: an exact match,
// or a unique prefix among all tasks (soft-deleted included).
func resolveID(s *store.Store, arg string) (string, error) {
	var matches []string
	for _, t := range s.All() {
		if t.ID == arg {
			return arg, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%w: %s", task.ErrNotFound, arg)
	default:
		return "", fmt.Errorf("%w: id prefix %q is ambiguous (%d matches)", task.ErrValidation, arg, len(matches))
	}
}

// shortID is the display form of a task id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printTaskLine(t task.Task) {
	fmt.Printf("%s  %-12s %-7s %s\n", shortID(t.ID), t.Status, t.Priority, t.Title)
}
