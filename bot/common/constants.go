package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
	ColorNeutral = 0x607D8B // Dark grey, used by panels and ticket intros
)

// UI constants
const (
	MaxButtonsPerRow = 5
	MaxActionRows    = 5
)

// Generic replies
const (
	MsgSomethingWentWrong = "Something went wrong. Please try again later."
	MsgAdminRequired      = "You need administrator permissions to use this command."
	MsgGuildOnly          = "This command can only be used inside a server."
)
