package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/Rosanadeaibes/my-notes/internal/auth/domain"
	"github.com/Rosanadeaibes/my-notes/internal/auth/dto"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserService struct {
	repo   domain.UserRepository
	tokens TokenIssuer
}

func NewUserService(repo domain.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

func validateCredentials(email, password string) error {
	var messages []string

	if _, err := mail.ParseAddress(email); err != nil {
		messages = append(messages, "Please provide a valid email")
	}
	if len(password) < minPasswordLength {
		messages = append(messages, "Password must be at least 6 characters long")
	}

	if len(messages) > 0 {
		return apperror.Validation(messages...)
	}

	return nil
}

func (s *UserService) SignUp(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, input dto.SigninInput) (*dto.SigninOutput, error) {
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password yield the same error so callers
	// cannot probe which one failed.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(KindAccess, user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.Issue(KindRefresh, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SigninOutput{
		ID:           user.ID,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh verifies a refresh token and mints a new access token for the same
// user. No new refresh token is issued: the presented one stays valid until
// its own expiry.
func (s *UserService) Refresh(_ context.Context, input dto.RefreshInput) (*dto.RefreshOutput, error) {
	if strings.TrimSpace(input.RefreshToken) == "" {
		return nil, apperror.Validation("Refresh token is required")
	}

	userID, err := s.tokens.Verify(KindRefresh, input.RefreshToken)
	if err != nil {
		if errors.Is(err, apperror.ErrTokenExpired) {
			return nil, apperror.ErrRefreshTokenExpired
		}
		return nil, apperror.ErrTokenInvalid
	}

	accessToken, err := s.tokens.Issue(KindAccess, userID)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshOutput{AccessToken: accessToken}, nil
}
