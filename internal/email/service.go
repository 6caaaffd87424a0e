package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
	"zatch-server/internal/clients/mail"
	"zatch-server/internal/observability"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending campaign emails
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	Email         string
	CouponCode    string
	Discount      int
	Orders        int
	ReferralLink  string
	ReferralCount int
	BoostReason   string
	Platform      string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"campaign_welcome": `
			<html>
				<body>
					<h1>You're in!</h1>
					<p>Welcome to Start Zatching. Your coupon is locked in:</p>
					<p><strong style="font-size: 24px;">{{.CouponCode}}</strong></p>
					<p>It's currently worth <strong>{{.Discount}}% off</strong> on your first <strong>{{.Orders}}</strong> {{if eq .Orders 1}}order{{else}}orders{{end}}.</p>
					<p>Want a bigger discount? Share your referral link and get boosted every time a friend joins:</p>
					<p><a href="{{.ReferralLink}}" style="background-color: #16A34A; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">{{.ReferralLink}}</a></p>
					<p>See you at launch!</p>
				</body>
			</html>
			`,
			"campaign_boost": `
			<html>
				<body>
					<h1>Your coupon just got better!</h1>
					{{if eq .BoostReason "referral"}}<p>A friend joined through your referral link, so we boosted your coupon.</p>{{else}}<p>Thanks for sharing on {{.Platform}} - here's a boost for spreading the word.</p>{{end}}
					<p>Coupon <strong>{{.CouponCode}}</strong> is now worth <strong>{{.Discount}}% off</strong> on your first <strong>{{.Orders}}</strong> {{if eq .Orders 1}}order{{else}}orders{{end}}.</p>
					<p>Keep it going - every referral earns another boost:</p>
					<p><a href="{{.ReferralLink}}">{{.ReferralLink}}</a></p>
				</body>
			</html>
			`,
			"newsletter_confirmation": `
			<html>
				<body>
					<h1>You're subscribed!</h1>
					<p>Thanks for subscribing to Zatch updates. We'll let you know the moment we launch.</p>
					<p>If you didn't subscribe, you can safely ignore this email.</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendCampaignWelcomeEmail sends the signup email with the participant's coupon and referral link
func (s *EmailService) SendCampaignWelcomeEmail(ctx context.Context, to string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "campaign_welcome"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("Your Zatch coupon %s is live - %d%% off", data.CouponCode, data.Discount)

	htmlContent, err := s.renderTemplate("campaign_welcome", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render campaign welcome email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send campaign welcome email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendBoostEmail notifies a participant that their coupon value changed
func (s *EmailService) SendBoostEmail(ctx context.Context, to string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "campaign_boost"},
		observability.Field{Key: "recipient", Value: to},
		observability.Field{Key: "boost_reason", Value: data.BoostReason},
	)

	subject := fmt.Sprintf("Boost applied - %s is now %d%% off", data.CouponCode, data.Discount)

	htmlContent, err := s.renderTemplate("campaign_boost", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render boost email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send boost email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendNewsletterConfirmationEmail confirms a newsletter subscription
func (s *EmailService) SendNewsletterConfirmationEmail(ctx context.Context, to string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "newsletter_confirmation"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "You're on the Zatch list"

	htmlContent, err := s.renderTemplate("newsletter_confirmation", TemplateData{Email: to})
	if err != nil {
		s.logger.Error(ctx, "failed to render newsletter confirmation email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send newsletter confirmation email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendEmail sends a generic email with custom content
func (s *EmailService) SendEmail(ctx context.Context, to, subject, htmlContent string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "custom"},
		observability.Field{Key: "recipient", Value: to},
	)

	if htmlContent == "" {
		s.logger.Error(ctx, "empty email content", ErrEmptyTemplate)
		return ErrEmptyTemplate
	}

	_, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send custom email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
