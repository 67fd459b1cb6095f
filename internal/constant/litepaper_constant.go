package constant

const (
	LitepaperStatusPending   = "pending"
	LitepaperStatusCompleted = "completed"

	OutputFormatPdf      = "pdf"
	OutputFormatHtml     = "html"
	OutputFormatMarkdown = "markdown"

	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Source tags for generation events
	GenerationSourceForm = "form"
	GenerationSourceChat = "chat"

	DefaultContentStyle   = "professional"
	DefaultDocumentLength = "standard"
	DefaultIncludeCharts  = "true"
)
