package maglayout

import "time"

type ServiceStatus struct {
	LayoutDir string
	Running   bool
	Walked    bool
	Results   int
	Skipped   int
	Started   time.Time
	Duration  time.Duration
}
