package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// ComposeText renders the plain text email for m.
func ComposeText(m Message) string {
	return fmt.Sprintf(`From: %s <%s>
Subject: %s
Reply-To: %s

Name: %s
Email: %s

Message:
%s
`, m.Name, m.Email, m.Subject, m.Email, m.Name, m.Email, m.Message)
}

var htmlTemplate = template.Must(template.New("email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #4338ca;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <h3 style="margin-top: 20px;">Message:</h3>
  <div style="background-color: #f9fafb; padding: 15px; border-radius: 5px;">{{.Body}}</div>
</div>`))

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func bodyPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("br")
		policy = p
	})
	return policy
}

// ComposeHTML renders the HTML email for m. Visitor input is stripped of
// markup and newlines in the message become line breaks.
func ComposeHTML(m Message) (string, error) {
	strict := bodyPolicy()
	body := strict.Sanitize(m.Message)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "<br>")

	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		Name, Email, Subject string
		Body                 template.HTML
	}{
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Body:    template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
