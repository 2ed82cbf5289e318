package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	args := m.Called(ctx, toEmail, name)
	return args.Error(0)
}

func (m *EmailService) SendSubmissionReceivedEmail(ctx context.Context, toEmail, recipientName, submitterName, summary string) error {
	args := m.Called(ctx, toEmail, recipientName, submitterName, summary)
	return args.Error(0)
}

func (m *EmailService) SendSubmissionReviewedEmail(ctx context.Context, toEmail, recipientName, summary, status, reviewerName string) error {
	args := m.Called(ctx, toEmail, recipientName, summary, status, reviewerName)
	return args.Error(0)
}
