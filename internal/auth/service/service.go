package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"museum/internal/auth/metrics"
	"museum/internal/auth/models"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/audit"
	"museum/pkg/platform/sentinel"
	"museum/pkg/requestcontext"
)

const bcryptCost = 10

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetVerifyOTP(ctx context.Context, id int64, otp string, expiresAt time.Time) error
	ConsumeVerifyOTP(ctx context.Context, id int64, otp string, now time.Time) error
	SetResetOTP(ctx context.Context, email, otp string, expiresAt time.Time) error
	ConsumeResetOTP(ctx context.Context, email, otp, passwordHash string, now time.Time) error
}

type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendVerifyOTP(ctx context.Context, to, otp string) error
	SendResetOTP(ctx context.Context, to, otp string) error
}

type TokenIssuer interface {
	GenerateSessionToken(userID int64, now time.Time, expiresIn time.Duration) (string, error)
}

type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns account registration, login and the two one-time code flows.
type Service struct {
	users      UserStore
	mailer     Mailer
	tokens     TokenIssuer
	auditor    Auditor
	logger     *slog.Logger
	metrics    *metrics.Metrics
	sessionTTL time.Duration
	otpTTL     time.Duration
	newOTP     func() (string, error)
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) {
		s.auditor = a
	}
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

func WithOTPTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.otpTTL = ttl
		}
	}
}

// WithOTPGenerator replaces the crypto/rand code generator.
func WithOTPGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		s.newOTP = gen
	}
}

func New(users UserStore, mailer Mailer, tokens TokenIssuer, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("users store is required")
	}
	if mailer == nil {
		return nil, errors.New("mailer is required")
	}
	if tokens == nil {
		return nil, errors.New("token issuer is required")
	}
	s := &Service{
		users:      users,
		mailer:     mailer,
		tokens:     tokens,
		logger:     slog.Default(),
		sessionTTL: 7 * 24 * time.Hour,
		otpTTL:     24 * time.Hour,
		newOTP:     generateOTP,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register creates the account, issues a session and sends the welcome email.
// The welcome email is best-effort.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
	case !errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		AccountType:  req.AccountType,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}
	if s.metrics != nil {
		s.metrics.IncrementRegistered()
	}
	s.audit(ctx, audit.Event{Action: audit.ActionUserRegistered, UserID: user.ID, Email: user.Email})

	session, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		s.logger.WarnContext(ctx, "welcome email not delivered",
			"user_id", user.ID,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return session, nil
}

func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.loginFailed(ctx, 0, req.Email, "unknown_user")
			return nil, dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}
	if user.AccountType != req.AccountType {
		s.loginFailed(ctx, user.ID, req.Email, "account_type_mismatch")
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid account type")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.loginFailed(ctx, user.ID, req.Email, "bad_password")
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid password")
	}
	s.recordLogin("success")
	s.audit(ctx, audit.Event{Action: audit.ActionLoginSucceeded, UserID: user.ID, Email: user.Email})
	return s.issueSession(ctx, user.ID)
}

// SendVerifyOTP issues a verification code for the signed-in user. Delivery
// failure is returned since an undelivered code cannot be used.
func (s *Service) SendVerifyOTP(ctx context.Context, userID int64) error {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAccountVerified {
		return dErrors.New(dErrors.CodeConflict, "Account already verified")
	}

	otp, err := s.newOTP()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate otp")
	}
	expiresAt := requestcontext.Now(ctx).Add(s.otpTTL)
	if err := s.users.SetVerifyOTP(ctx, user.ID, otp, expiresAt); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store otp")
	}
	if err := s.mailer.SendVerifyOTP(ctx, user.Email, otp); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send otp email")
	}
	if s.metrics != nil {
		s.metrics.IncrementOTPIssued("verify")
	}
	s.audit(ctx, audit.Event{Action: audit.ActionOTPIssued, UserID: user.ID, Email: user.Email, Reason: "verify"})
	return nil
}

// VerifyEmail checks the code against the stored one and marks the account
// verified. The final write only succeeds while the code is still unused.
func (s *Service) VerifyEmail(ctx context.Context, userID int64, otp string) error {
	if userID <= 0 || otp == "" {
		return dErrors.New(dErrors.CodeValidation, "Missing Details")
	}
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return err
	}
	now := requestcontext.Now(ctx)
	if err := s.checkOTP("verify", user.VerifyOTPMatches(otp), user.VerifyOTPExpiresAt, now); err != nil {
		return err
	}

	if err := s.users.ConsumeVerifyOTP(ctx, user.ID, otp, now); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.recordOTPCheck("verify", "race_lost")
			return dErrors.New(dErrors.CodeUnauthorized, "Invalid OTP")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify account")
	}
	s.recordOTPCheck("verify", "success")
	s.audit(ctx, audit.Event{Action: audit.ActionAccountVerified, UserID: user.ID, Email: user.Email})
	return nil
}

func (s *Service) SendResetOTP(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	otp, err := s.newOTP()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate otp")
	}
	expiresAt := requestcontext.Now(ctx).Add(s.otpTTL)
	if err := s.users.SetResetOTP(ctx, user.Email, otp, expiresAt); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store otp")
	}
	if err := s.mailer.SendResetOTP(ctx, user.Email, otp); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send otp email")
	}
	if s.metrics != nil {
		s.metrics.IncrementOTPIssued("reset")
	}
	s.audit(ctx, audit.Event{Action: audit.ActionOTPIssued, UserID: user.ID, Email: user.Email, Reason: "reset"})
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}
	now := requestcontext.Now(ctx)
	if err := s.checkOTP("reset", user.ResetOTPMatches(req.OTP), user.ResetOTPExpiresAt, now); err != nil {
		return err
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.ConsumeResetOTP(ctx, user.Email, req.OTP, string(hash), now); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.recordOTPCheck("reset", "race_lost")
			return dErrors.New(dErrors.CodeUnauthorized, "Invalid OTP")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset password")
	}
	s.recordOTPCheck("reset", "success")
	s.audit(ctx, audit.Event{Action: audit.ActionPasswordReset, UserID: user.ID, Email: user.Email})
	return nil
}

func hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, dErrors.New(dErrors.CodeValidation, "Password must be at most 72 bytes")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	return hash, nil
}

func (s *Service) GetUserData(ctx context.Context, userID int64) (*models.UserData, error) {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Data(), nil
}

func (s *Service) findByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return user, nil
}

// checkOTP reports a mismatch before an expiry, so a wrong guess never
// reveals whether a code is outstanding.
func (s *Service) checkOTP(purpose string, matches bool, expiresAt, now time.Time) error {
	if !matches {
		s.recordOTPCheck(purpose, "invalid")
		return dErrors.New(dErrors.CodeUnauthorized, "Invalid OTP")
	}
	if !now.Before(expiresAt) {
		s.recordOTPCheck(purpose, "expired")
		return dErrors.New(dErrors.CodeUnauthorized, "OTP expired")
	}
	return nil
}

func (s *Service) issueSession(ctx context.Context, userID int64) (*models.Session, error) {
	now := requestcontext.Now(ctx)
	token, err := s.tokens.GenerateSessionToken(userID, now, s.sessionTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session")
	}
	return &models.Session{UserID: userID, Token: token, ExpiresAt: now.Add(s.sessionTTL)}, nil
}

func (s *Service) recordLogin(result string) {
	if s.metrics != nil {
		s.metrics.IncrementLogin(result)
	}
}

func (s *Service) loginFailed(ctx context.Context, userID int64, email, reason string) {
	s.recordLogin(reason)
	s.audit(ctx, audit.Event{Action: audit.ActionAuthFailed, UserID: userID, Email: email, Reason: reason})
}

func (s *Service) audit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit event not recorded",
			"action", event.Action,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func (s *Service) recordOTPCheck(purpose, result string) {
	if s.metrics != nil {
		s.metrics.IncrementOTPCheck(purpose, result)
	}
}

// generateOTP returns a uniformly random six digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
