package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/fadilmartias/skillsyncer/internal/model"
)

// StatusNotice tells an applicant that an employer decided on an application.
type StatusNotice struct {
	To              string
	ApplicantName   string
	CompanyName     string
	InternshipTitle string
	Status          string
	Notes           string
}

type Notifier interface {
	NotifyStatus(ctx context.Context, n StatusNotice) error
}

// ShouldNotify reports whether a status change is worth an email.
func ShouldNotify(status string) bool {
	return status == model.StatusShortlisted || status == model.StatusRejected || status == model.StatusAccepted
}

func (n StatusNotice) Subject() string {
	switch n.Status {
	case model.StatusShortlisted:
		return fmt.Sprintf("You've been shortlisted for %s", n.InternshipTitle)
	case model.StatusAccepted:
		return fmt.Sprintf("Offer: %s at %s", n.InternshipTitle, n.CompanyName)
	default:
		return fmt.Sprintf("Update on your application for %s", n.InternshipTitle)
	}
}

func (n StatusNotice) Body() string {
	var body string
	switch n.Status {
	case model.StatusShortlisted:
		body = fmt.Sprintf("Hi %s,\n\nGood news! %s has shortlisted your application for %s. They will contact you about next steps.",
			n.ApplicantName, n.CompanyName, n.InternshipTitle)
	case model.StatusAccepted:
		body = fmt.Sprintf("Hi %s,\n\nCongratulations! %s has accepted your application for %s.",
			n.ApplicantName, n.CompanyName, n.InternshipTitle)
	default:
		body = fmt.Sprintf("Hi %s,\n\nThank you for applying to %s at %s. After careful review the team has decided not to move forward with your application.",
			n.ApplicantName, n.InternshipTitle, n.CompanyName)
	}
	if n.Notes != "" {
		body += "\n\nNote from the employer:\n" + n.Notes
	}
	return body + "\n\nThe SkillSyncer team"
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESNotifier struct {
	client sesAPI
	from   string
	log    logger.Logger
}

func NewSESNotifier(ctx context.Context, region, from string, log logger.Logger) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESNotifier{client: ses.NewFromConfig(cfg), from: from, log: log}, nil
}

func (s *SESNotifier) NotifyStatus(ctx context.Context, n StatusNotice) error {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(s.from),
		Destination: &types.Destination{ToAddresses: []string{n.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(n.Subject()), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(n.Body()), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send status email: %w", err)
	}
	s.log.Info("status email sent", map[string]interface{}{
		"to":        n.To,
		"status":    n.Status,
		"messageId": aws.ToString(out.MessageId),
	})
	return nil
}

// LogNotifier writes notices to the log instead of sending them.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) NotifyStatus(_ context.Context, n StatusNotice) error {
	l.log.Info("status email (not sent)", map[string]interface{}{
		"to":      n.To,
		"subject": n.Subject(),
		"status":  n.Status,
	})
	return nil
}
