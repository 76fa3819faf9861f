package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	userdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/user"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserUsecase interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Create(ctx context.Context, input *userdto.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id uint, input *userdto.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id uint) error
}

type DefaultUserUsecase struct {
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	BcryptCost  int
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, sessionRepo domain.SessionRepository, bcryptCost int) *DefaultUserUsecase {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &DefaultUserUsecase{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		BcryptCost:  bcryptCost,
	}
}

func hashPassword(password string, cost int) (string, error) {
	if len(password) < minPasswordLength {
		return "", domain.Validationf("password must be at least %d characters", minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func parseRole(s string) (domain.Role, error) {
	switch domain.Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", domain.RoleUser:
		return domain.RoleUser, nil
	case domain.RoleAdmin:
		return domain.RoleAdmin, nil
	}
	return "", domain.Validationf("unknown role %q", s)
}

func duplicateUsername(username string) error {
	return fmt.Errorf("%w: username %q is taken", domain.ErrConflict, username)
}

func (uc *DefaultUserUsecase) List(ctx context.Context) ([]*domain.User, error) {
	return uc.UserRepo.List(ctx)
}

func (uc *DefaultUserUsecase) Get(ctx context.Context, id uint) (*domain.User, error) {
	return uc.UserRepo.GetByID(ctx, id)
}

func (uc *DefaultUserUsecase) Create(ctx context.Context, input *userdto.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domain.Validationf("username is required")
	}
	role, err := parseRole(input.Role)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(input.Password, uc.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:           username,
		PasswordHash:       hash,
		Role:               role,
		IsActive:           true,
		MustChangePassword: true,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.MustChangePassword != nil {
		user.MustChangePassword = *input.MustChangePassword
	}

	if err := uc.UserRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, duplicateUsername(username)
		}
		return nil, err
	}
	return user, nil
}

func (uc *DefaultUserUsecase) Update(ctx context.Context, id uint, input *userdto.UpdateUserInput) (*domain.User, error) {
	user, err := uc.UserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, domain.Validationf("username is required")
		}
		user.Username = username
	}
	if input.Role != nil {
		if user.Role, err = parseRole(*input.Role); err != nil {
			return nil, err
		}
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.MustChangePassword != nil {
		user.MustChangePassword = *input.MustChangePassword
	}
	if input.Password != nil && *input.Password != "" {
		if user.PasswordHash, err = hashPassword(*input.Password, uc.BcryptCost); err != nil {
			return nil, err
		}
	}

	if err := uc.UserRepo.Update(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, duplicateUsername(user.Username)
		}
		return nil, err
	}

	if !user.IsActive {
		if err := uc.SessionRepo.DeleteByUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (uc *DefaultUserUsecase) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if actor != nil && actor.ID == id {
		return domain.Validationf("you cannot delete your own account")
	}
	return uc.UserRepo.Delete(ctx, id)
}
