package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ticketbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// report is the outcome of one health check
type report struct {
	gatewayLatency  time.Duration
	databaseLatency time.Duration
	databaseErr     error
	eventBus        string
	panels          int
}

// HandleCommand handles the /health-check command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	r := f.check(context.Background(), s.HeartbeatLatency())

	if r.databaseErr != nil {
		log.WithError(r.databaseErr).Warn("Health check database ping failed")
	}

	common.RespondEphemeral(s, i, r.String())
	return r.databaseErr
}

func (f *Feature) check(ctx context.Context, gatewayLatency time.Duration) report {
	r := report{
		gatewayLatency: gatewayLatency,
		eventBus:       "disabled",
	}

	r.databaseLatency, r.databaseErr = f.database.PingLatency(ctx)
	if r.databaseErr == nil && f.onPing != nil {
		f.onPing(r.databaseLatency)
	}

	if f.eventBus != nil {
		if f.eventBus.IsConnected() {
			r.eventBus = "connected"
		} else {
			r.eventBus = "disconnected"
		}
	}

	if f.panels != nil {
		r.panels = f.panels.Len()
	}

	return r
}

func (r report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pong: %s\n", common.FormatLatency(r.gatewayLatency))
	if r.databaseErr != nil {
		b.WriteString("Database: unavailable\n")
	} else {
		fmt.Fprintf(&b, "Database: %s\n", common.FormatLatency(r.databaseLatency))
	}
	fmt.Fprintf(&b, "Event bus: %s\n", r.eventBus)
	fmt.Fprintf(&b, "Panels loaded: %d", r.panels)
	return b.String()
}
