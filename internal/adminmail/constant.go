package adminmail

// User-facing flow messages.
const (
	MsgNotAuthorized      = "❌ You are not authorized to send emails."
	MsgAdminConfigMissing = "❌ Admin email configuration missing."
	MsgSpecifyEmployee    = "❓ Please specify the employee name."
	MsgEmployeeNotFound   = "❌ Employee '%s' not found."
	MsgNoEmailFor         = "❌ Email not available for %s."
	MsgAskMessage         = "📩 What message would you like to send to %s?"
	MsgProvideMessage     = "❓ Please provide the message to send."
	MsgSent               = "✅ Email sent successfully to %s."
	MsgDeliveryFailed     = "❌ Sending to %s failed, your message was not delivered. Please try again."
)
