package chat

// IntentAdminSendEmail is the catalog id that starts the admin mail flow.
const IntentAdminSendEmail = "ADMIN_SEND_EMAIL"

// User-facing orchestrator messages.
const (
	MsgEmptyInput     = "❓ Please type a message."
	MsgLoginRequired  = "🔒 Please log in to access this information. Use /login <employee_id> <password>."
	MsgLoginUsage     = "Usage: /login <employee_id> <password>"
	MsgLoginFailed    = "❌ Invalid employee id or password."
	MsgAlreadyOut     = "You are not logged in. Use /login <employee_id> <password>."
	MsgLoggedOut      = "👋 You have been logged out."
	MsgUnknownCommand = "❓ Unknown command. Type /help to see what I can do."
	MsgFallback       = "🤔 I did not catch that. Type /help to see what I can do."
)
