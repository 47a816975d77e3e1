package domain

// Notification is one pending message for an external transport to deliver.
// The engine only decides recipients and content; delivery failure is logged
// and never surfaced to the triggering workflow operation.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
