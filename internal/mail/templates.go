// Package mail turns template ids into rendered emails and ships them, either
// onto the mail stream (Notifier) or over SMTP (Deliverer).
package mail

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"helloteam.app/api/internal/queue"
)

const (
	TemplateVerifyEmail     queue.TemplateID = "verify-email"
	TemplateResetPassword   queue.TemplateID = "reset-password"
	TemplateStaffInvitation queue.TemplateID = "staff-invitation"
)

// ErrUnknownTemplate is permanent: retrying will not help.
var ErrUnknownTemplate = errors.New("unknown mail template")

type Rendered struct {
	Subject string
	HTML    string
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

type Templates struct {
	byID map[queue.TemplateID]mailTemplate
}

const layout = `<!DOCTYPE html>
<html><body style="font-family: Helvetica, Arial, sans-serif; color: #222;">
{{template "content" .}}
<p style="color: #888; font-size: 12px;">HelloTeam</p>
</body></html>`

var contents = map[queue.TemplateID]struct {
	subject string
	body    string
}{
	TemplateVerifyEmail: {
		subject: "Welcome to HelloTeam!",
		body: `<p>Hi {{.name}},</p>
<p>Thanks for signing up. Please confirm your email address:</p>
<p><a href="{{.url}}">Verify my email</a></p>`,
	},
	TemplateResetPassword: {
		subject: "[HelloTeam] Password Reset",
		body: `<p>Hi {{.name}},</p>
<p>Someone asked to reset your password. The link is valid for one hour:</p>
<p><a href="{{.url}}">Choose a new password</a></p>
<p>If this wasn't you, ignore this email.</p>`,
	},
	TemplateStaffInvitation: {
		subject: "[HelloTeam] You've been invited to join {{.workspace}}",
		body: `<p>Hello,</p>
<p>You've been invited to help run <strong>{{.workspace}}</strong> on HelloTeam.</p>
<p>Your invitation code is <strong>{{.code}}</strong>. It expires in 24 hours.</p>
<p><a href="{{.url}}">Accept the invitation</a></p>`,
	},
}

func NewTemplates() (*Templates, error) {
	t := &Templates{byID: make(map[queue.TemplateID]mailTemplate, len(contents))}
	for id, c := range contents {
		body, err := template.New(string(id)).Parse(layout)
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", id, err)
		}
		if _, err := body.New("content").Parse(c.body); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", id, err)
		}
		t.byID[id] = mailTemplate{subject: c.subject, body: body}
	}
	return t, nil
}

func (t *Templates) Has(id queue.TemplateID) bool {
	_, ok := t.byID[id]
	return ok
}

func (t *Templates) Render(id queue.TemplateID, data map[string]string) (*Rendered, error) {
	mt, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}

	subject, err := renderSubject(mt.subject, data)
	if err != nil {
		return nil, fmt.Errorf("rendering subject for %s: %w", id, err)
	}

	var body bytes.Buffer
	if err := mt.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("rendering body for %s: %w", id, err)
	}

	return &Rendered{Subject: subject, HTML: body.String()}, nil
}

// Subjects are plain text header values, so they skip HTML escaping.
func renderSubject(subject string, data map[string]string) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(buf.String()), nil
}
