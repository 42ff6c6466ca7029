package domain

// Message is a rendered notification for a single giver.
// It only ever names that giver's own recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}
