package game

import (
	"errors"
	"log/slog"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/sort-visualization/internal/input"
)

// askValues prompts for a comma-separated array. ok is false when the user
// cancels.
func askValues(current string) (string, bool, error) {
	text, err := zenity.Entry("Numbers separated by commas:",
		zenity.Title("Custom Array"),
		zenity.EntryText(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return text, true, nil
}

// pickValues lets the user choose a numbers or audio file and loads it.
func pickValues(n, limit int) ([]float64, bool, error) {
	filters := make(zenity.FileFilters, len(input.Filters))
	for i, f := range input.Filters {
		filters[i] = zenity.FileFilter{Name: f.Name, Patterns: f.Patterns}
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Open Array"),
		filters,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil, false, nil
		}
		return nil, false, err
	}

	values, err := input.Load(filename, n, limit)
	if err != nil {
		return nil, false, err
	}
	slog.Info("array loaded", "file", filename, "size", len(values))
	return values, true, nil
}

func showError(title, text string) {
	if err := zenity.Error(text, zenity.Title(title), zenity.ErrorIcon); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		slog.Error("error dialog failed", "error", err)
	}
}
