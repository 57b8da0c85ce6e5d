package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/sliding-scale/internal/deck"
)

// openDeckDialog asks for a deck file and mounts it. Cancelling is not an
// error.
func (g *Game) openDeckDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Deck"),
		zenity.FileFilters{{
			Name:     "Deck",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	d, err := deck.Load(filename)
	if err != nil {
		return err
	}
	g.log.Info("deck loaded", "path", filename, "items", len(d.Items))
	return g.mount(d, d.Focus)
}

// ReportFatal shows err in a native dialog before the process exits.
func ReportFatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Sliding Scale"), zenity.ErrorIcon)
}
