package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/pkg/mailer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderUserIdRoundTrip(t *testing.T) {
	userId := uuid.New()
	orderId := fmt.Sprintf("%s%s-%d", orderIdPrefix, userId, time.Now().Unix())

	parsed, err := parseOrderUserId(orderId)
	assert.NoError(t, err)
	assert.Equal(t, userId, parsed)
}

func TestGrossAmountRoundsToWholeDollars(t *testing.T) {
	assert.Equal(t, int64(10), grossAmount())
}

func TestParseOrderUserIdRejectsMalformed(t *testing.T) {
	for _, orderId := range []string{
		"",
		"premium-",
		"premium-not-a-uuid-123",
		"other-" + uuid.NewString() + "-123",
	} {
		_, err := parseOrderUserId(orderId)
		assert.Error(t, err, orderId)
	}
}

func signWebhook(req *dto.MidtransWebhookRequest, serverKey string) {
	input := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	req.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
}

func webhookFor(userId uuid.UUID, status, serverKey string) *dto.MidtransWebhookRequest {
	req := &dto.MidtransWebhookRequest{
		OrderId:           fmt.Sprintf("%s%s-%d", orderIdPrefix, userId, time.Now().Unix()),
		TransactionStatus: status,
		StatusCode:        "200",
		GrossAmount:       "10.00",
	}
	signWebhook(req, serverKey)
	return req
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")
	f := newPipeline(t, nil)
	svc := NewPaymentService(f.session, f.factory, mailer.NoopEmailService{}, nil)

	req := webhookFor(f.session.Current().Id, "settlement", "wrong-key")
	err := svc.HandleNotification(context.Background(), req)
	assert.Error(t, err)
	assert.False(t, f.session.Current().IsPremium)
}

func TestWebhookSettlementUpgradesCurrentUser(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")
	f := newPipeline(t, nil)
	svc := NewPaymentService(f.session, f.factory, mailer.NoopEmailService{}, nil)

	req := webhookFor(f.session.Current().Id, "settlement", "test-server-key")
	assert.NoError(t, svc.HandleNotification(context.Background(), req))

	// Session snapshot and repository row both flipped.
	assert.True(t, f.session.Current().IsPremium)
	stored, err := f.factory.Users.FindOne(context.Background())
	assert.NoError(t, err)
	assert.True(t, stored.IsPremium)
}

func TestWebhookNonFinalStatusesChangeNothing(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")
	f := newPipeline(t, nil)
	svc := NewPaymentService(f.session, f.factory, mailer.NoopEmailService{}, nil)

	for _, status := range []string{"pending", "deny", "cancel", "expire", "weird"} {
		req := webhookFor(f.session.Current().Id, status, "test-server-key")
		assert.NoError(t, svc.HandleNotification(context.Background(), req), status)
		assert.False(t, f.session.Current().IsPremium, status)
	}
}

func TestWebhookUpgradesSignedOutUserViaRepository(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "test-server-key")
	f := newPipeline(t, nil)
	svc := NewPaymentService(f.session, f.factory, mailer.NoopEmailService{}, nil)

	userId := f.session.Current().Id
	assert.NoError(t, f.session.Logout(context.Background()))

	req := webhookFor(userId, "capture", "test-server-key")
	assert.NoError(t, svc.HandleNotification(context.Background(), req))

	stored, err := f.factory.Users.FindOne(context.Background())
	assert.NoError(t, err)
	assert.True(t, stored.IsPremium)
}

func TestCheckoutRequiresFreeAccount(t *testing.T) {
	f := newPipeline(t, func(u *entity.User) {
		u.IsPremium = true
	})
	svc := NewPaymentService(f.session, f.factory, mailer.NoopEmailService{}, nil)

	_, err := svc.CreateCheckout(context.Background())
	assert.Error(t, err)
}

func TestGetPlanDescribesPremiumTier(t *testing.T) {
	f := newPipeline(t, nil)
	svc := NewPaymentService(f.session, f.factory, mailer.NoopEmailService{}, nil)

	plan, err := svc.GetPlan(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Premium", plan.Name)
	assert.Equal(t, 9.99, plan.Price)
	assert.Equal(t, "month", plan.Period)
	assert.NotEmpty(t, plan.Features)
}
