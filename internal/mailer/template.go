package mailer

import (
	"bytes"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/adarshvish/portfolio-api/internal/contact"
)

// bodyData feeds both email templates. Message arrives already HTML-escaped
// from validation; MessageHTML only adds line breaks.
type bodyData struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	MessageHTML template.HTML
	Fallback    bool
	SentAt      string
}

var htmlTmpl = template.Must(template.New("contact_html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>New Contact Form Submission</title>
<style>
body { background: #1a202c; color: #f7fafc; font-family: 'Fira Mono', 'Consolas', monospace; margin: 0; padding: 0; }
.container { max-width: 700px; margin: 40px auto; background: #2d3748; border-radius: 10px; padding: 32px; }
.header { color: #63b3ed; font-size: 2em; margin-bottom: 10px; letter-spacing: 2px; }
.subtitle { color: #f6e05e; font-size: 1.1em; margin-bottom: 24px; }
.notice { background: #2d3748; color: #f6e05e; border: 1px solid #f6e05e; padding: 10px; border-radius: 4px; margin-bottom: 15px; }
.field { margin-bottom: 18px; }
.field-label { color: #f6e05e; font-weight: bold; }
.field-value { background: #1a202c; color: #f7fafc; padding: 10px 16px; border-radius: 4px; border-left: 4px solid #63b3ed; margin-top: 4px; }
.message-box { background: #1a202c; color: #f7fafc; padding: 18px; border-radius: 4px; border: 1px solid #4fd1c5; margin-top: 10px; }
.footer { text-align: center; margin-top: 32px; color: #718096; font-size: 0.95em; }
</style>
</head>
<body>
<div class="container">
<div class="header">New Portfolio Contact</div>
<div class="subtitle">A message from your digital terminal...</div>
{{if .Fallback}}<div class="notice"><strong>Note:</strong> This message was sent via portfolio system. Reply to this email to respond to {{.Name}} at {{.Email}}.</div>
{{end}}<div class="field"><div class="field-label">Name:</div><div class="field-value">{{.Name}}</div></div>
<div class="field"><div class="field-label">Email:</div><div class="field-value">{{.Email}}</div></div>
<div class="field"><div class="field-label">Subject:</div><div class="field-value">{{.Subject}}</div></div>
<div class="field"><div class="field-label">Message:</div><div class="message-box">{{.MessageHTML}}</div></div>
<div class="footer">
<p>// This message was sent from your portfolio contact form at {{.SentAt}}</p>
<p>// Reply directly to this email to respond to {{.Name}}</p>
</div>
</div>
</body>
</html>
`))

var textTmpl = texttemplate.Must(texttemplate.New("contact_text").Parse(`{{if .Fallback}}Note: This message was sent via portfolio system. Reply to this email to respond to {{.Name}} at {{.Email}}.

{{end}}New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}

Message:
{{.Message}}

---
This message was sent from your portfolio contact form.
Reply directly to this email to respond to {{.Name}}.
`))

// renderBodies produces the HTML and plain-text bodies for a submission.
func renderBodies(sub *contact.Submission, fallback bool) (html, text string, err error) {
	data := bodyData{
		Name:        sub.Name,
		Email:       sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
		MessageHTML: template.HTML(strings.ReplaceAll(sub.Message, "\n", "<br>")),
		Fallback:    fallback,
		SentAt:      time.Now().UTC().Format(time.RFC3339),
	}

	var hb, tb bytes.Buffer
	if err := htmlTmpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := textTmpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}
