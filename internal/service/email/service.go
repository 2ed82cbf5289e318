package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v2"

	"esg-platform/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
	SendSubmissionReceivedEmail(ctx context.Context, toEmail, recipientName, submitterName, summary string) error
	SendSubmissionReviewedEmail(ctx context.Context, toEmail, recipientName, summary, status, reviewerName string) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("ESG Platform <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Welcome to the ESG Platform",
		Name:  name,
		Link:  fmt.Sprintf("https://%s/login", s.config.Domain),
	}
	return s.sendEmail(toEmail, "Welcome to the ESG Platform", "welcome.html", data)
}

func (s *service) SendSubmissionReceivedEmail(ctx context.Context, toEmail, recipientName, submitterName, summary string) error {
	data := struct {
		Title         string
		Name          string
		SubmitterName string
		Summary       string
		Link          string
	}{
		Title:         "New Submission Awaiting Review",
		Name:          recipientName,
		SubmitterName: submitterName,
		Summary:       summary,
		Link:          fmt.Sprintf("https://%s/review", s.config.Domain),
	}
	return s.sendEmail(toEmail, "New Submission Awaiting Review - ESG Platform", "submission_received.html", data)
}

func (s *service) SendSubmissionReviewedEmail(ctx context.Context, toEmail, recipientName, summary, status, reviewerName string) error {
	color := "#10b981"
	if status == "DENIED" {
		color = "#ef4444"
	}

	data := struct {
		Title        string
		Name         string
		Summary      string
		Status       string
		ReviewerName string
		Color        string
	}{
		Title:        fmt.Sprintf("Submission %s", status),
		Name:         recipientName,
		Summary:      summary,
		Status:       status,
		ReviewerName: reviewerName,
		Color:        color,
	}
	return s.sendEmail(toEmail, fmt.Sprintf("Submission %s - ESG Platform", status), "submission_reviewed.html", data)
}
