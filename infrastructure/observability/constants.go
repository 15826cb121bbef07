package observability

// Metric name prefixes
const (
	MetricPrefix = "ticketbot"
)

// Metric names
const (
	// Discord metrics
	CommandsTotal     = MetricPrefix + ".commands.total"
	InteractionsTotal = MetricPrefix + ".interactions.total"

	// Ticket metrics
	PanelsCreatedTotal = MetricPrefix + ".panels.created_total"
	TicketsOpenedTotal = MetricPrefix + ".tickets.opened_total"
	TicketsClosedTotal = MetricPrefix + ".tickets.closed_total"

	// NATS metrics
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"

	// Database metrics
	DatabasePingDuration = MetricPrefix + ".database.ping_duration"
)

// Label keys
const (
	LabelCommand   = "command"
	LabelOutcome   = "outcome"
	LabelKind      = "kind"
	LabelEventType = "event_type"
	LabelGuildID   = "guild_id"
	LabelClosedBy  = "closed_by"
)

// Outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Close sources
const (
	ClosedByBot    = "bot"
	ClosedByManual  = "manual_delete"
)
