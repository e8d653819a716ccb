package queue

// TemplateID names a mail template known to the worker.
type TemplateID string

// MailMessage is one outbound email waiting for delivery. Data holds the
// template variables.
type MailMessage struct {
	TemplateID TemplateID
	Recipient  string
	Data       map[string]string
	UserID     *int64
	TraceID    *string
	Attempt    int
}
