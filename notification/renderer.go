package notification

import (
	"strings"
	"text/template"

	"secret-santa/domain"
)

const DefaultSubject = "🎅 Your Secret Santa Assignment!"

// Renderer builds the message a giver receives. The dispatcher fills in
// the destination address.
type Renderer func(giver, recipient string) (domain.Message, error)

var bodyTemplate = template.Must(template.New("body").Parse(`Ho Ho Ho {{.Giver}}!

You are the Secret Santa for: {{.Recipient}}

Remember to keep this a secret! 🤫

Happy gift shopping!

🎄 Secret Santa Organizer
`))

// DefaultRenderer renders the plain text assignment message.
func DefaultRenderer(subject string) Renderer {
	if subject == "" {
		subject = DefaultSubject
	}
	return func(giver, recipient string) (domain.Message, error) {
		var body strings.Builder
		err := bodyTemplate.Execute(&body, struct {
			Giver     string
			Recipient string
		}{giver, recipient})
		if err != nil {
			return domain.Message{}, err
		}
		return domain.Message{Subject: subject, Body: body.String()}, nil
	}
}
