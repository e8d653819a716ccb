package mail_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/common/logger"
	"helloteam.app/api/internal/mail"
	"helloteam.app/api/internal/queue"
)

type mockProducer struct {
	enqueued []queue.MailMessage
	err      error
}

func (m *mockProducer) Enqueue(_ context.Context, msg queue.MailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, msg)
	return nil
}

func (m *mockProducer) Close() error { return nil }

type mockSender struct {
	sent []mail.Envelope
	err  error
}

func (m *mockSender) Send(_ context.Context, env mail.Envelope) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, env)
	return nil
}

var _ = Describe("Mail", func() {
	var (
		ctx       context.Context
		templates *mail.Templates
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		templates, err = mail.NewTemplates()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Templates", func() {
		It("renders the verification email", func() {
			r, err := templates.Render(mail.TemplateVerifyEmail, map[string]string{
				"name": "Dana",
				"url":  "https://app.helloteam.io/panel/verify-email/tok",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Subject).To(Equal("Welcome to HelloTeam!"))
			Expect(r.HTML).To(ContainSubstring("Hi Dana"))
			Expect(r.HTML).To(ContainSubstring(`href="https://app.helloteam.io/panel/verify-email/tok"`))
		})

		It("uses the password reset subject", func() {
			r, err := templates.Render(mail.TemplateResetPassword, map[string]string{"name": "Dana", "url": "https://x"})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Subject).To(Equal("[HelloTeam] Password Reset"))
		})

		It("puts the workspace name in the invitation subject without escaping it", func() {
			r, err := templates.Render(mail.TemplateStaffInvitation, map[string]string{
				"workspace": "Tigers & Lions",
				"code":      "AB12C",
				"url":       "https://x",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Subject).To(Equal("[HelloTeam] You've been invited to join Tigers & Lions"))
			Expect(r.HTML).To(ContainSubstring("Tigers &amp; Lions"))
			Expect(r.HTML).To(ContainSubstring("AB12C"))
		})

		It("escapes user data in bodies", func() {
			r, err := templates.Render(mail.TemplateVerifyEmail, map[string]string{"name": "<script>", "url": "https://x"})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.HTML).NotTo(ContainSubstring("<script>"))
		})

		It("rejects unknown templates", func() {
			_, err := templates.Render("nope", nil)
			Expect(err).To(MatchError(mail.ErrUnknownTemplate))
		})
	})

	Describe("Notifier", func() {
		It("enqueues the message with the acting user", func() {
			producer := &mockProducer{}
			n := mail.NewNotifier(producer, templates)

			userID := int64(9)
			ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &userID})
			err := n.Send(ctx, mail.TemplateResetPassword, "dana@example.com", map[string]string{"url": "u"})
			Expect(err).NotTo(HaveOccurred())

			Expect(producer.enqueued).To(HaveLen(1))
			msg := producer.enqueued[0]
			Expect(msg.TemplateID).To(Equal(mail.TemplateResetPassword))
			Expect(msg.Recipient).To(Equal("dana@example.com"))
			Expect(*msg.UserID).To(Equal(userID))
		})

		It("refuses unknown templates before enqueueing", func() {
			producer := &mockProducer{}
			n := mail.NewNotifier(producer, templates)

			err := n.Send(ctx, "bogus", "dana@example.com", nil)
			Expect(err).To(MatchError(mail.ErrUnknownTemplate))
			Expect(producer.enqueued).To(BeEmpty())
		})

		It("wraps producer failures", func() {
			producer := &mockProducer{err: errors.New("redis down")}
			n := mail.NewNotifier(producer, templates)

			err := n.Send(ctx, mail.TemplateVerifyEmail, "dana@example.com", nil)
			Expect(err).To(MatchError(ContainSubstring("redis down")))
		})
	})

	Describe("Deliverer", func() {
		It("renders and sends from the configured address", func() {
			sender := &mockSender{}
			d := mail.NewDeliverer(templates, sender, "team@helloteam.io")

			err := d.Deliver(ctx, queue.Message{ID: "1-0", MailMessage: queue.MailMessage{
				TemplateID: mail.TemplateResetPassword,
				Recipient:  "dana@example.com",
				Data:       map[string]string{"name": "Dana", "url": "https://x"},
				Attempt:    1,
			}})
			Expect(err).NotTo(HaveOccurred())
			Expect(sender.sent).To(HaveLen(1))
			Expect(sender.sent[0].From).To(Equal("team@helloteam.io"))
			Expect(sender.sent[0].To).To(Equal("dana@example.com"))
			Expect(sender.sent[0].Subject).To(Equal("[HelloTeam] Password Reset"))
		})

		It("returns sender errors for retry", func() {
			sender := &mockSender{err: errors.New("421 try later")}
			d := mail.NewDeliverer(templates, sender, "team@helloteam.io")

			err := d.Deliver(ctx, queue.Message{MailMessage: queue.MailMessage{
				TemplateID: mail.TemplateVerifyEmail,
				Recipient:  "dana@example.com",
			}})
			Expect(err).To(MatchError(ContainSubstring("421 try later")))
		})
	})
})
