// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/pkg/mailer"
	"ai-videosummary-be/internal/repository/specification"
	"ai-videosummary-be/internal/repository/unitofwork"

	"ai-videosummary-be/pkg/events"
	pktNats "ai-videosummary-be/pkg/nats" // Renamed to avoid collision

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// The product has exactly one paid tier.
const (
	premiumPlanName  = "Premium"
	premiumPlanPrice = 9.99
	orderIdPrefix    = "premium-"
)

// grossAmount rounds the plan price to the whole-dollar integer amount
// Midtrans expects.
func grossAmount() int64 {
	return int64(math.Round(premiumPlanPrice))
}

type IPaymentService interface {
	GetPlan(ctx context.Context) (*dto.PlanResponse, error)
	CreateCheckout(ctx context.Context) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	UpgradeStatus(ctx context.Context) (*dto.UpgradeStatusResponse, error)
}

type paymentService struct {
	session        ISessionService
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewPaymentService(
	session ISessionService,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IPaymentService {
	return &paymentService{
		session:        session,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *paymentService) GetPlan(ctx context.Context) (*dto.PlanResponse, error) {
	return &dto.PlanResponse{
		Name:     premiumPlanName,
		Price:    premiumPlanPrice,
		Currency: "USD",
		Period:   "month",
		Features: []string{
			"Unlimited summaries",
			"Priority processing",
			"Export to PDF & Markdown",
			"Summary history",
		},
	}, nil
}

// CreateCheckout opens a Midtrans Snap transaction for the signed-in user.
// The order id embeds the user id so the webhook can attribute the payment
// without a pending-orders table.
func (s *paymentService) CreateCheckout(ctx context.Context) (*dto.CheckoutResponse, error) {
	user := s.session.Current()
	if user == nil {
		return nil, dto.ErrNotAuthenticated
	}
	if user.IsPremium {
		return nil, fmt.Errorf("account is already premium")
	}

	orderId := fmt.Sprintf("%s%s-%d", orderIdPrefix, user.Id, time.Now().Unix())

	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/app?payment=success", frontendURL)

	gross := grossAmount()

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: gross,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-monthly",
				Price: gross,
				Qty:   1,
				Name:  fmt.Sprintf("%s (monthly)", premiumPlanName),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	fmt.Printf("[WEBHOOK] OrderId: %s | Status: %s\n", req.OrderId, req.TransactionStatus)

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	userId, err := parseOrderUserId(req.OrderId)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Invalid order_id format: %s\n", req.OrderId)
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		// fall through to the upgrade below
	case "deny", "cancel", "expire", "pending":
		// Entitlements change only on a confirmed payment.
		fmt.Printf("[WEBHOOK] Status '%s' - no entitlement change\n", req.TransactionStatus)
		return nil
	default:
		fmt.Printf("[WEBHOOK] Unknown status '%s' - no action taken\n", req.TransactionStatus)
		return nil
	}

	return s.activatePremium(ctx, userId, req.OrderId)
}

// activatePremium flips the user's tier. When the paying user is the one
// currently signed in, the write goes through the session manager so the
// in-memory snapshot and the session slot pick it up immediately.
func (s *paymentService) activatePremium(ctx context.Context, userId uuid.UUID, orderId string) error {
	current := s.session.Current()
	if current != nil && current.Id == userId {
		if current.IsPremium {
			return nil
		}
		updated := current.Clone()
		updated.IsPremium = true
		updated.UpdatedAt = time.Now()
		if err := s.session.UpdateUser(ctx, updated); err != nil {
			return err
		}
		s.afterUpgrade(ctx, updated.Email, updated.Name, userId, orderId)
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found for order %s", orderId)
	}
	if user.IsPremium {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	user.IsPremium = true
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.afterUpgrade(ctx, user.Email, user.Name, userId, orderId)
	return nil
}

func (s *paymentService) afterUpgrade(ctx context.Context, email, name string, userId uuid.UUID, orderId string) {
	if s.emailService != nil {
		if err := s.emailService.SendUpgradeReceipt(email, name, orderId); err != nil {
			fmt.Printf("[WARN] Failed to send upgrade receipt: %v\n", err)
		}
	}
	if s.eventPublisher != nil {
		evt := events.NewPremiumUpgraded(userId, orderId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PREMIUM_UPGRADED event: %v\n", err)
		}
	}
}

func (s *paymentService) UpgradeStatus(ctx context.Context) (*dto.UpgradeStatusResponse, error) {
	user := s.session.Current()
	if user == nil {
		return nil, dto.ErrNotAuthenticated
	}
	return &dto.UpgradeStatusResponse{
		IsPremium: user.IsPremium,
	}, nil
}

// parseOrderUserId recovers the user id from "premium-<uuid>-<unix>".
func parseOrderUserId(orderId string) (uuid.UUID, error) {
	rest, ok := strings.CutPrefix(orderId, orderIdPrefix)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid order id format")
	}
	idx := strings.LastIndex(rest, "-")
	if idx < 0 {
		return uuid.Nil, fmt.Errorf("invalid order id format")
	}
	return uuid.Parse(rest[:idx])
}
