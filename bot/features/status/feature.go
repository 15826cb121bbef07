package status

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// DatabasePinger measures a database round trip
type DatabasePinger interface {
	PingLatency(ctx context.Context) (time.Duration, error)
}

// ConnectionChecker reports whether a connection is up
type ConnectionChecker interface {
	IsConnected() bool
}

// PanelCounter reports how many panels are loaded
type PanelCounter interface {
	Len() int
}

// Feature handles the health-check command
type Feature struct {
	session  *discordgo.Session
	database DatabasePinger
	eventBus ConnectionChecker // nil when event publishing is disabled
	panels   PanelCounter
	onPing   func(time.Duration)
}

// NewFeature creates a new status feature instance. onPing receives every successful
// database ping duration and may be nil.
func NewFeature(session *discordgo.Session, database DatabasePinger, eventBus ConnectionChecker, panels PanelCounter, onPing func(time.Duration)) *Feature {
	return &Feature{
		session:  session,
		database: database,
		eventBus: eventBus,
		panels:   panels,
		onPing:   onPing,
	}
}
