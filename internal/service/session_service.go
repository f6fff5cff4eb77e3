// FILE: internal/service/session_service.go
package service

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/pkg/mailer"
	"ai-videosummary-be/internal/repository/contract"
	"ai-videosummary-be/internal/repository/specification"
	"ai-videosummary-be/internal/repository/unitofwork"

	"ai-videosummary-be/pkg/events"
	pktNats "ai-videosummary-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SessionState string

const (
	SessionStateInitializing    SessionState = "initializing"
	SessionStateUnauthenticated SessionState = "unauthenticated"
	SessionStateAuthenticated   SessionState = "authenticated"
)

// ISessionService owns the one live session: who is signed in, persisted
// across restarts through the session store. It is the only component
// allowed to write identity state.
type ISessionService interface {
	Init(ctx context.Context) error
	State() SessionState
	// Current returns a snapshot of the signed-in user, or nil.
	Current() *entity.User
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
	// UpdateUser persists the record verbatim and swaps the in-memory
	// session to it. Callers are trusted to pass a consistent record.
	UpdateUser(ctx context.Context, user *entity.User) error
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	store          contract.SessionStore
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher

	// mu serializes every state transition and the read-modify-persist
	// sequence behind UpdateUser.
	mu    sync.Mutex
	state SessionState
	user  *entity.User
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	store contract.SessionStore,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		store:          store,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		state:          SessionStateInitializing,
	}
}

// Init restores the session slot. A missing or corrupt slot lands in
// unauthenticated; only a store I/O failure is surfaced.
func (s *sessionService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		s.state = SessionStateUnauthenticated
		s.user = nil
		return nil
	}
	s.state = SessionStateAuthenticated
	s.user = user
	return nil
}

func (s *sessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sessionService) Current() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *sessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password fail identically.
	if user == nil || user.PasswordHash == nil {
		return nil, dto.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, dto.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	s.state = SessionStateAuthenticated
	s.user = user.Clone()

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserLogin(user.Id)); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User:        ToUserDTO(user),
	}, nil
}

func (s *sessionService) Signup(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dto.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	user := &entity.User{
		Id:                  uuid.New(),
		Email:               req.Email,
		Name:                req.Name,
		PasswordHash:        &hashStr,
		Role:                entity.UserRoleUser,
		IsPremium:           false,
		DailyUsage:          0,
		DailyUsageLastReset: now,
		TotalUsage:          0,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	s.state = SessionStateAuthenticated
	s.user = user.Clone()

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcome(user.Email, user.Name); err != nil {
			fmt.Printf("[WARN] Failed to send welcome email: %v\n", err)
		}
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserRegistered(user.Id, user.Email)); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
		}
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User:        ToUserDTO(user),
	}, nil
}

// Logout clears the slot and transitions to unauthenticated. Safe to call
// when already signed out.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.state = SessionStateUnauthenticated
	s.user = nil
	return nil
}

func (s *sessionService) UpdateUser(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionStateAuthenticated {
		return dto.ErrNotAuthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}
	if err := s.store.Save(ctx, user); err != nil {
		return err
	}
	s.user = user.Clone()
	return nil
}

func (s *sessionService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

// ToUserDTO maps a user entity to its response shape.
func ToUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:         u.Id,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		IsPremium:  u.IsPremium,
		DailyUsage: u.DailyUsage,
		TotalUsage: u.TotalUsage,
		CreatedAt:  u.CreatedAt,
	}
}
