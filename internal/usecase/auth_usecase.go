package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenLength = 32

type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type DefaultAuthUsecase struct {
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	SessionTTL  time.Duration
	BcryptCost  int
	newToken    func() string
	now         func() time.Time
}

func NewDefaultAuthUsecase(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	sessionTTL time.Duration,
	bcryptCost int,
) (*DefaultAuthUsecase, error) {
	newToken, err := nanoid.Standard(sessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("init token generator: %w", err)
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &DefaultAuthUsecase{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		SessionTTL:  sessionTTL,
		BcryptCost:  bcryptCost,
		newToken:    newToken,
		now:         time.Now,
	}, nil
}

var errBadCredentials = fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)

func (uc *DefaultAuthUsecase) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	user, err := uc.UserRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, errBadCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, errBadCredentials
	}
	if !user.IsActive {
		return nil, nil, fmt.Errorf("%w: account is disabled", domain.ErrUnauthorized)
	}

	session := &domain.Session{
		Token:     uc.newToken(),
		UserID:    user.ID,
		ExpiresAt: uc.now().Add(uc.SessionTTL).UTC(),
	}
	if err := uc.SessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

func (uc *DefaultAuthUsecase) Logout(ctx context.Context, token string) error {
	return uc.SessionRepo.Delete(ctx, token)
}

// Authenticate resolves a session token to an active user.
func (uc *DefaultAuthUsecase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := uc.SessionRepo.Get(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !uc.now().Before(session.ExpiresAt) {
		_ = uc.SessionRepo.Delete(ctx, token)
		return nil, fmt.Errorf("%w: session expired", domain.ErrUnauthorized)
	}

	user, err := uc.UserRepo.GetByID(ctx, session.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", domain.ErrUnauthorized)
	}
	return user, nil
}

func (uc *DefaultAuthUsecase) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.Validationf("current password is incorrect")
	}
	if currentPassword == newPassword {
		return domain.Validationf("new password must differ from the current one")
	}

	hash, err := hashPassword(newPassword, uc.BcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.MustChangePassword = false
	return uc.UserRepo.Update(ctx, user)
}

func (uc *DefaultAuthUsecase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return uc.SessionRepo.DeleteExpired(ctx, uc.now())
}
