package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sns.PublishOutput)
	return out, args.Error(1)
}

func TestSNSNotifier_Publishes(t *testing.T) {
	pub := &mockPublisher{}
	n := NewSNSNotifierWithClient(pub, "arn:aws:sns:eu-central-1:1:requests")

	pub.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		var got Notification
		if err := json.Unmarshal([]byte(aws.ToString(in.Message)), &got); err != nil {
			return false
		}
		return aws.ToString(in.TopicArn) == "arn:aws:sns:eu-central-1:1:requests" &&
			aws.ToString(in.Subject) == "Product added to cart successfully" &&
			aws.ToString(in.MessageAttributes["kind"].StringValue) == string(KindAddedToCart) &&
			got.Description == "3 Envelopes has been added to your cart."
	})).Return(&sns.PublishOutput{MessageId: aws.String("m-1")}, nil).Once()

	err := n.Notify(context.Background(), AddedToCart("jdoe", 3, "Envelopes", nil))
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestSNSNotifier_WrapsError(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

	err := NewSNSNotifierWithClient(pub, "arn").Notify(context.Background(), RequestSubmitted("jdoe", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(KindRequestSubmitted))
}

type recorder struct {
	got []Notification
	err error
}

func (r *recorder) Notify(_ context.Context, n Notification) error {
	r.got = append(r.got, n)
	return r.err
}

func TestMulti_DeliversToAllAndReturnsFirstError(t *testing.T) {
	failing := &recorder{err: errors.New("down")}
	ok := &recorder{}

	err := Multi{LogNotifier{}, failing, ok}.Notify(context.Background(), RequestSubmitted("jdoe", nil))

	assert.EqualError(t, err, "down")
	assert.Len(t, failing.got, 1)
	assert.Len(t, ok.got, 1)
	assert.Equal(t, "Your product request has been submitted for approval.", ok.got[0].Description)
}
