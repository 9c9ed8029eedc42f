package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"museum/internal/auth/metrics"
	"museum/internal/auth/models"
	"museum/internal/auth/service/mocks"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/audit"
	"museum/pkg/platform/audit/publisher"
	"museum/pkg/platform/audit/store/memory"
	"museum/pkg/platform/sentinel"
	"museum/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockUsers  *mocks.MockUserStore
	mockMailer *mocks.MockMailer
	mockTokens *mocks.MockTokenIssuer
	auditLog   *memory.InMemoryStore
	service    *Service
	now        time.Time
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserStore(s.ctrl)
	s.mockMailer = mocks.NewMockMailer(s.ctrl)
	s.mockTokens = mocks.NewMockTokenIssuer(s.ctrl)
	s.now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.auditLog = memory.NewInMemoryStore()

	svc, err := New(s.mockUsers, s.mockMailer, s.mockTokens,
		WithAuditor(publisher.NewPublisher(s.auditLog)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
		WithOTPGenerator(func() (string, error) { return "482913", nil }),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) assertCode(err error, code dErrors.Code, message string) {
	s.T().Helper()
	s.Require().Error(err)
	de, ok := dErrors.As(err)
	s.Require().True(ok, "expected domain error, got %v", err)
	s.Equal(code, de.Code)
	if message != "" {
		s.Equal(message, de.Message)
	}
}

func hashed(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func (s *ServiceSuite) TestNewRequiresDependencies() {
	_, err := New(nil, s.mockMailer, s.mockTokens)
	s.Error(err)
	_, err = New(s.mockUsers, nil, s.mockTokens)
	s.Error(err)
	_, err = New(s.mockUsers, s.mockMailer, nil)
	s.Error(err)
}

func (s *ServiceSuite) TestRegister() {
	req := &models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret", AccountType: "visitor"}

	s.Run("creates user and issues session", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, sentinel.ErrNotFound)
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
			s.Equal("visitor", u.AccountType)
			u.ID = 11
			return nil
		})
		s.mockTokens.EXPECT().GenerateSessionToken(int64(11), s.now, 7*24*time.Hour).Return("signed", nil)
		s.mockMailer.EXPECT().SendWelcome(gomock.Any(), "ada@example.com", "Ada").Return(nil)

		session, err := s.service.Register(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(int64(11), session.UserID)
		s.Equal("signed", session.Token)
		s.Equal(s.now.Add(7*24*time.Hour), session.ExpiresAt)

		events, err := s.auditLog.ListByUser(context.Background(), 11)
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal(audit.ActionUserRegistered, events[0].Action)
	})

	s.Run("welcome email failure does not fail registration", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockTokens.EXPECT().GenerateSessionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return("signed", nil)
		s.mockMailer.EXPECT().SendWelcome(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := s.service.Register(s.ctx, req)
		s.NoError(err)
	})

	s.Run("existing email is a conflict", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&models.User{ID: 1}, nil)

		_, err := s.service.Register(s.ctx, req)
		s.assertCode(err, dErrors.CodeConflict, "User already exists")
	})

	s.Run("unique violation on insert is a conflict", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict)

		_, err := s.service.Register(s.ctx, req)
		s.assertCode(err, dErrors.CodeConflict, "User already exists")
	})

	s.Run("password too long for bcrypt is a validation error", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

		long := &models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: strings.Repeat("x", 80), AccountType: "visitor"}
		_, err := s.service.Register(s.ctx, long)
		s.assertCode(err, dErrors.CodeValidation, "Password must be at most 72 bytes")
	})
}

func (s *ServiceSuite) TestLogin() {
	user := &models.User{ID: 5, Email: "ada@example.com", PasswordHash: hashed("s3cret"), AccountType: "visitor"}

	s.Run("success", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
		s.mockTokens.EXPECT().GenerateSessionToken(int64(5), s.now, gomock.Any()).Return("signed", nil)

		session, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "ada@example.com", Password: "s3cret", AccountType: "visitor"})
		s.Require().NoError(err)
		s.Equal("signed", session.Token)
	})

	s.Run("unknown user", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		_, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "x@example.com", Password: "p", AccountType: "visitor"})
		s.assertCode(err, dErrors.CodeNotFound, "User not found")
	})

	s.Run("account type mismatch", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
		_, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "ada@example.com", Password: "s3cret", AccountType: "admin"})
		s.assertCode(err, dErrors.CodeUnauthorized, "Invalid account type")
	})

	s.Run("wrong password", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
		_, err := s.service.Login(s.ctx, &models.LoginRequest{Email: "ada@example.com", Password: "nope", AccountType: "visitor"})
		s.assertCode(err, dErrors.CodeUnauthorized, "Invalid password")
	})
}

func (s *ServiceSuite) TestLoginAuditTrail() {
	user := &models.User{ID: 5, Email: "ada@example.com", PasswordHash: hashed("s3cret"), AccountType: "visitor"}
	ctx := requestcontext.WithClientMetadata(s.ctx, "203.0.113.7", "test")

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, sentinel.ErrNotFound)
	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil).Times(2)
	s.mockTokens.EXPECT().GenerateSessionToken(int64(5), s.now, gomock.Any()).Return("signed", nil)

	_, err := s.service.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "p", AccountType: "visitor"})
	s.Error(err)
	_, err = s.service.Login(ctx, &models.LoginRequest{Email: "ada@example.com", Password: "nope", AccountType: "visitor"})
	s.Error(err)
	_, err = s.service.Login(ctx, &models.LoginRequest{Email: "ada@example.com", Password: "s3cret", AccountType: "visitor"})
	s.Require().NoError(err)

	anonymous, err := s.auditLog.ListByUser(context.Background(), 0)
	s.Require().NoError(err)
	s.Require().Len(anonymous, 1)
	s.Equal(audit.ActionAuthFailed, anonymous[0].Action)
	s.Equal("unknown_user", anonymous[0].Reason)
	s.Equal("ghost@example.com", anonymous[0].Email)
	s.Equal("203.0.113.7", anonymous[0].ClientIP)

	events, err := s.auditLog.ListByUser(context.Background(), 5)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(audit.ActionAuthFailed, events[0].Action)
	s.Equal("bad_password", events[0].Reason)
	s.Equal(audit.CategorySecurity, events[0].Category)
	s.Equal(audit.ActionLoginSucceeded, events[1].Action)
	s.Equal(s.now, events[1].Timestamp)
}

func (s *ServiceSuite) TestSendVerifyOTP() {
	s.Run("stores code with expiry and emails it", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5, Email: "ada@example.com"}, nil)
		s.mockUsers.EXPECT().SetVerifyOTP(gomock.Any(), int64(5), "482913", s.now.Add(24*time.Hour)).Return(nil)
		s.mockMailer.EXPECT().SendVerifyOTP(gomock.Any(), "ada@example.com", "482913").Return(nil)

		s.NoError(s.service.SendVerifyOTP(s.ctx, 5))
	})

	s.Run("already verified", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5, IsAccountVerified: true}, nil)
		s.assertCode(s.service.SendVerifyOTP(s.ctx, 5), dErrors.CodeConflict, "Account already verified")
	})

	s.Run("email failure is surfaced", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5, Email: "ada@example.com"}, nil)
		s.mockUsers.EXPECT().SetVerifyOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockMailer.EXPECT().SendVerifyOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		s.assertCode(s.service.SendVerifyOTP(s.ctx, 5), dErrors.CodeInternal, "")
	})

	s.Run("unknown user", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(77)).Return(nil, sentinel.ErrNotFound)
		s.assertCode(s.service.SendVerifyOTP(s.ctx, 77), dErrors.CodeNotFound, "User not found")
	})
}

func (s *ServiceSuite) TestVerifyEmail() {
	pending := func(expiresAt time.Time) *models.User {
		return &models.User{ID: 5, VerifyOTP: "482913", VerifyOTPExpiresAt: expiresAt}
	}

	s.Run("matching unexpired code verifies", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(pending(s.now.Add(time.Hour)), nil)
		s.mockUsers.EXPECT().ConsumeVerifyOTP(gomock.Any(), int64(5), "482913", s.now).Return(nil)

		s.NoError(s.service.VerifyEmail(s.ctx, 5, "482913"))
	})

	s.Run("wrong code", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(pending(s.now.Add(time.Hour)), nil)
		s.assertCode(s.service.VerifyEmail(s.ctx, 5, "000000"), dErrors.CodeUnauthorized, "Invalid OTP")
	})

	s.Run("no outstanding code", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&models.User{ID: 5}, nil)
		s.assertCode(s.service.VerifyEmail(s.ctx, 5, "482913"), dErrors.CodeUnauthorized, "Invalid OTP")
	})

	s.Run("expired code", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(pending(s.now.Add(-time.Second)), nil)
		s.assertCode(s.service.VerifyEmail(s.ctx, 5, "482913"), dErrors.CodeUnauthorized, "OTP expired")
	})

	s.Run("code consumed concurrently", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).Return(pending(s.now.Add(time.Hour)), nil)
		s.mockUsers.EXPECT().ConsumeVerifyOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sentinel.ErrAlreadyUsed)

		s.assertCode(s.service.VerifyEmail(s.ctx, 5, "482913"), dErrors.CodeUnauthorized, "Invalid OTP")
	})

	s.Run("missing details", func() {
		s.assertCode(s.service.VerifyEmail(s.ctx, 0, "482913"), dErrors.CodeValidation, "Missing Details")
	})
}

func (s *ServiceSuite) TestSendResetOTP() {
	s.Run("issues code", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&models.User{ID: 5, Email: "ada@example.com"}, nil)
		s.mockUsers.EXPECT().SetResetOTP(gomock.Any(), "ada@example.com", "482913", s.now.Add(24*time.Hour)).Return(nil)
		s.mockMailer.EXPECT().SendResetOTP(gomock.Any(), "ada@example.com", "482913").Return(nil)

		s.NoError(s.service.SendResetOTP(s.ctx, "ada@example.com"))
	})

	s.Run("unknown email", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)
		s.assertCode(s.service.SendResetOTP(s.ctx, "ghost@example.com"), dErrors.CodeNotFound, "User not found")
	})
}

func (s *ServiceSuite) TestResetPassword() {
	req := &models.ResetPasswordRequest{Email: "ada@example.com", OTP: "482913", NewPassword: "n3w"}

	s.Run("replaces password hash", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").
			Return(&models.User{ID: 5, Email: "ada@example.com", ResetOTP: "482913", ResetOTPExpiresAt: s.now.Add(time.Minute)}, nil)
		s.mockUsers.EXPECT().ConsumeResetOTP(gomock.Any(), "ada@example.com", "482913", gomock.Any(), s.now).
			DoAndReturn(func(_ context.Context, _, _, hash string, _ time.Time) error {
				s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("n3w")))
				return nil
			})

		s.NoError(s.service.ResetPassword(s.ctx, req))
	})

	s.Run("expired", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&models.User{ID: 5, Email: "ada@example.com", ResetOTP: "482913", ResetOTPExpiresAt: s.now}, nil)
		s.assertCode(s.service.ResetPassword(s.ctx, req), dErrors.CodeUnauthorized, "OTP expired")
	})

	s.Run("new password too long for bcrypt is a validation error", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&models.User{ID: 5, Email: "ada@example.com", ResetOTP: "482913", ResetOTPExpiresAt: s.now.Add(time.Minute)}, nil)

		long := &models.ResetPasswordRequest{Email: "ada@example.com", OTP: "482913", NewPassword: strings.Repeat("x", 80)}
		s.assertCode(s.service.ResetPassword(s.ctx, long), dErrors.CodeValidation, "Password must be at most 72 bytes")
	})

	s.Run("verify code does not unlock reset", func() {
		s.mockUsers.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&models.User{ID: 5, Email: "ada@example.com", VerifyOTP: "482913", VerifyOTPExpiresAt: s.now.Add(time.Hour)}, nil)
		s.assertCode(s.service.ResetPassword(s.ctx, req), dErrors.CodeUnauthorized, "Invalid OTP")
	})
}

func (s *ServiceSuite) TestGetUserData() {
	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(5)).
		Return(&models.User{ID: 5, Name: "Ada", Email: "ada@example.com", AccountType: "visitor", IsAccountVerified: true}, nil)

	data, err := s.service.GetUserData(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(&models.UserData{Name: "Ada", Email: "ada@example.com", AccountType: "visitor", IsAccountVerified: true}, data)
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)
	for range 50 {
		otp, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP: %v", err)
		}
		if !pattern.MatchString(otp) {
			t.Fatalf("unexpected otp %q", otp)
		}
	}
}
