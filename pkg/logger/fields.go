package logger

// Standard field names for consistent logging.
const (
	FieldService   = "service"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldChatID    = "chat_id"
	FieldMessageID = "message_id"
	FieldRole      = "role"
	FieldAction    = "action"
	FieldIssueKey  = "issue_key"
	FieldQueue     = "queue"
)
