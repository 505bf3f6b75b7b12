// Package notify forwards user-facing notifications (cart adds, submissions) to a sink.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/logging"
)

type Kind string

const (
	KindAddedToCart      Kind = "cart.added"
	KindRequestSubmitted Kind = "request.submitted"
)

// Notification is the toast shown to the user plus the payload for downstream consumers
type Notification struct {
	Kind        Kind        `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	LoginID     string      `json:"login_id"`
	Data        interface{} `json:"data,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the process log
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n Notification) error {
	logging.L().Info("notification",
		logging.String("kind", string(n.Kind)),
		logging.String("title", n.Title),
		logging.String("description", n.Description),
		logging.String("login_id", n.LoginID),
	)
	return nil
}

// Publisher is the subset of the SNS API used by SNSNotifier
type Publisher interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier publishes notifications as JSON messages to an SNS topic
type SNSNotifier struct {
	client   Publisher
	topicARN string
}

// NewSNSNotifier creates a notifier for the topic using the AWS config
func NewSNSNotifier(cfg aws.Config, topicARN string) *SNSNotifier {
	return NewSNSNotifierWithClient(sns.NewFromConfig(cfg), topicARN)
}

func NewSNSNotifierWithClient(client Publisher, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

func (s *SNSNotifier) Notify(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(n.Title),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"kind": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(n.Kind)),
			},
		},
	}

	out, err := s.client.Publish(ctx, input)
	if err != nil {
		return fmt.Errorf("publish %s: %w", n.Kind, err)
	}
	logging.L().Debug("notification published",
		logging.String("kind", string(n.Kind)),
		logging.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

// Multi fans a notification out to every notifier and returns the first error
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var first error
	for _, nt := range m {
		if err := nt.Notify(ctx, n); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// AddedToCart builds the cart toast
func AddedToCart(loginID string, quantity int, productName string, data interface{}) Notification {
	return Notification{
		Kind:        KindAddedToCart,
		Title:       "Product added to cart successfully",
		Description: fmt.Sprintf("%d %s has been added to your cart.", quantity, productName),
		LoginID:     loginID,
		Data:        data,
	}
}

// RequestSubmitted builds the submission toast
func RequestSubmitted(loginID string, data interface{}) Notification {
	return Notification{
		Kind:        KindRequestSubmitted,
		Title:       "Request submitted successfully",
		Description: "Your product request has been submitted for approval.",
		LoginID:     loginID,
		Data:        data,
	}
}
