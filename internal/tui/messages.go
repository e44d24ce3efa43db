package tui

import (
	"time"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
)

// ConfigReloadedMsg carries the outcome of a config file reload.
type ConfigReloadedMsg struct {
	Config *config.File
	Err    error
}

// animationFrameMsg advances the indicator spring by one frame.
type animationFrameMsg time.Time
