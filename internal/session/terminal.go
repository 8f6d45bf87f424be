package session

import (
	"context"
	"fmt"

	"github.com/verte-zerg/mecano/internal/model"
	"github.com/verte-zerg/mecano/internal/source"
	"github.com/verte-zerg/mecano/internal/stats"
	"github.com/verte-zerg/mecano/internal/terminal"
)

// RunTerminal runs a session on the controlling terminal. The terminal is
// restored before returning, also when the session fails or panics.
func RunTerminal(ctx context.Context, cfg model.Config, src source.WordSource, opts ...Option) (stats.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return stats.Summary{}, err
	}
	if _, err := terminal.ParseTheme(cfg.Theme); err != nil {
		return stats.Summary{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	screen, err := terminal.NewScreen()
	if err != nil {
		return stats.Summary{}, err
	}
	defer screen.Close()
	return Run(ctx, cfg, screen, src, opts...)
}
