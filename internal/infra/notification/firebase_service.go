package notification

import (
	"context"
	"fmt"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits multicast sends to 500 tokens per request.
const multicastBatchSize = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendAlert pushes an outbreak alert to the given device tokens in batches and
// returns the number of successful deliveries.
func (s *firebaseService) SendAlert(ctx context.Context, tokens []string, alert *entity.OutbreakAlert) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	title := fmt.Sprintf("Outbreak alert: %s", alert.Disease)
	body := fmt.Sprintf("%s reported in %s. %s", alert.Disease, alert.Area, alert.Advice)
	data := map[string]string{
		"alertId": alert.ID,
		"disease": alert.Disease,
		"area":    alert.Area,
	}

	sent := 0
	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := start + multicastBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		message := &messaging.MulticastMessage{
			Tokens: tokens[start:end],
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return sent, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		sent += response.SuccessCount
	}

	return sent, nil
}
