package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/terraincognita07/remedywhisper/internal/models"
	"go.uber.org/zap"
)

// ReminderSender delivers one due reminder to an outside channel. Telegram
// and SES senders post to a single operator-configured recipient for every
// profile; profileID is passed for logging only.
type ReminderSender interface {
	Name() string
	Send(ctx context.Context, profileID string, reminder models.Reminder) error
}

func FormatReminderMessage(reminder models.Reminder) string {
	message := fmt.Sprintf("Remedy Whisper reminder (%s): %s", reminder.Time, strings.TrimSpace(reminder.Title))
	if description := strings.TrimSpace(reminder.Description); description != "" {
		message += "\n" + description
	}
	return message
}

const defaultTelegramAPIBase = "https://api.telegram.org"

type TelegramSender struct {
	botToken string
	chatID   string
	apiBase  string
	client   HTTPClient
}

func NewTelegramSender(botToken string, chatID string, client HTTPClient) (*TelegramSender, error) {
	if strings.TrimSpace(botToken) == "" || strings.TrimSpace(chatID) == "" {
		return nil, errors.New("telegram bot token and chat id are required")
	}
	if client == nil {
		client = &http.Client{Timeout: 8 * time.Second}
	}
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultTelegramAPIBase,
		client:   client,
	}, nil
}

func (sender *TelegramSender) Name() string {
	return "telegram"
}

func (sender *TelegramSender) Send(ctx context.Context, _ string, reminder models.Reminder) error {
	values := url.Values{}
	values.Set("chat_id", sender.chatID)
	values.Set("text", FormatReminderMessage(reminder))

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", sender.apiBase, sender.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sender.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

type sesEmailClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailSender mails reminders through Amazon SES.
type EmailSender struct {
	client    sesEmailClient
	fromEmail string
	toEmail   string
}

func NewEmailSender(ctx context.Context, region string, fromEmail string, toEmail string) (*EmailSender, error) {
	if strings.TrimSpace(fromEmail) == "" || strings.TrimSpace(toEmail) == "" {
		return nil, errors.New("ses sender and recipient addresses are required")
	}

	options := make([]func(*awsconfig.LoadOptions) error, 0, 1)
	if strings.TrimSpace(region) != "" {
		options = append(options, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &EmailSender{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}, nil
}

func (sender *EmailSender) Name() string {
	return "ses"
}

func (sender *EmailSender) Send(ctx context.Context, _ string, reminder models.Reminder) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(sender.fromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{sender.toEmail},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{
					Data:    aws.String("Reminder: " + strings.TrimSpace(reminder.Title)),
					Charset: aws.String("UTF-8"),
				},
				Body: &sestypes.Body{
					Text: &sestypes.Content{
						Data:    aws.String(FormatReminderMessage(reminder)),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := sender.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send email to %s: %w", sender.toEmail, err)
	}
	return nil
}

// LogSender only writes the reminder to the application log.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

func (sender *LogSender) Name() string {
	return "log"
}

func (sender *LogSender) Send(_ context.Context, profileID string, reminder models.Reminder) error {
	sender.logger.Info("reminder due",
		zap.String("profile_id", profileID),
		zap.String("reminder_id", reminder.ID),
		zap.String("title", reminder.Title),
		zap.String("time", reminder.Time),
	)
	return nil
}
