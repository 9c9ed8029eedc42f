package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"museum/internal/auth/handler/mocks"
	"museum/internal/auth/models"
	dErrors "museum/pkg/domain-errors"
	authmw "museum/pkg/platform/middleware/auth"
	"museum/pkg/testutil"
)

type fakeSessions map[string]int64

func (f fakeSessions) ValidateSession(token string) (int64, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return 0, errors.New("invalid token")
}

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(s.service, fakeSessions{"valid": 5}, authmw.Cookie{MaxAge: 7 * 24 * time.Hour}, logger)
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: authmw.CookieName, Value: "valid"})
	return req
}

func (s *HandlerSuite) TestRegisterSetsCookie() {
	s.service.EXPECT().Register(gomock.Any(), &models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "pw", AccountType: "visitor",
	}).Return(&models.Session{UserID: 5, Token: "signed"}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Ada", "email": "ADA@example.com", "password": "pw", "accountType": "visitor",
	})
	rr := testutil.DoRequest(s.router, req)

	body := testutil.AssertSuccess(s.T(), rr, http.StatusCreated)
	s.Equal("User registered successfully", body["message"])
	cookies := rr.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(authmw.CookieName, cookies[0].Name)
	s.Equal("signed", cookies[0].Value)
	s.True(cookies[0].HttpOnly)
}

func (s *HandlerSuite) TestRegisterValidation() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/register", map[string]string{"name": "Ada"})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertFailure(s.T(), rr, http.StatusBadRequest, "All fields are required")
}

func (s *HandlerSuite) TestRegisterDuplicate() {
	s.service.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeConflict, "User already exists"))

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "pw", "accountType": "visitor",
	})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertFailure(s.T(), rr, http.StatusConflict, "User already exists")
	s.Empty(rr.Result().Cookies())
}

func (s *HandlerSuite) TestLogin() {
	s.Run("success", func() {
		s.service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&models.Session{UserID: 5, Token: "signed"}, nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ada@example.com", "password": "pw", "accountType": "visitor",
		})
		rr := testutil.DoRequest(s.router, req)
		body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
		s.Equal("Login successful", body["message"])
		s.Len(rr.Result().Cookies(), 1)
	})

	s.Run("wrong password", func() {
		s.service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid password"))
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ada@example.com", "password": "bad", "accountType": "visitor",
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertFailure(s.T(), rr, http.StatusUnauthorized, "Invalid password")
	})
}

func (s *HandlerSuite) TestLogoutClearsCookie() {
	rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/logout", nil))
	body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
	s.Equal("Logout successful", body["message"])
	s.Equal(-1, rr.Result().Cookies()[0].MaxAge)
}

func (s *HandlerSuite) TestSendVerifyOTP() {
	s.Run("requires session", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/send-verify-otp", nil))
		testutil.AssertFailure(s.T(), rr, http.StatusUnauthorized, "Unauthorized Login Again")
	})

	s.Run("sends for session user", func() {
		s.service.EXPECT().SendVerifyOTP(gomock.Any(), int64(5)).Return(nil)
		req := withSession(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/send-verify-otp", nil))
		rr := testutil.DoRequest(s.router, req)
		body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
		s.Equal("OTP sent successfully on your email", body["message"])
		s.EqualValues(5, body["userId"])
	})
}

func (s *HandlerSuite) TestVerifyAccount() {
	s.Run("explicit id", func() {
		s.service.EXPECT().VerifyEmail(gomock.Any(), int64(9), "482913").Return(nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/verify-account", map[string]any{"id": 9, "otp": "482913"})
		rr := testutil.DoRequest(s.router, req)
		body := testutil.AssertSuccess(s.T(), rr, http.StatusOK)
		s.Equal("Account verified successfully", body["message"])
	})

	s.Run("id from session cookie", func() {
		s.service.EXPECT().VerifyEmail(gomock.Any(), int64(5), "482913").Return(nil)
		req := withSession(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/verify-account", map[string]any{"otp": "482913"}))
		testutil.AssertSuccess(s.T(), testutil.DoRequest(s.router, req), http.StatusOK)
	})

	s.Run("expired otp", func() {
		s.service.EXPECT().VerifyEmail(gomock.Any(), int64(9), "482913").Return(dErrors.New(dErrors.CodeUnauthorized, "OTP expired"))
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/verify-account", map[string]any{"id": 9, "otp": "482913"})
		testutil.AssertFailure(s.T(), testutil.DoRequest(s.router, req), http.StatusUnauthorized, "OTP expired")
	})

	s.Run("missing otp", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/verify-account", map[string]any{"id": 9})
		testutil.AssertFailure(s.T(), testutil.DoRequest(s.router, req), http.StatusBadRequest, "Missing Details")
	})
}

func (s *HandlerSuite) TestPasswordReset() {
	s.Run("send reset otp requires email", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/send-reset-otp", map[string]string{})
		testutil.AssertFailure(s.T(), testutil.DoRequest(s.router, req), http.StatusBadRequest, "Email is required")
	})

	s.Run("send reset otp", func() {
		s.service.EXPECT().SendResetOTP(gomock.Any(), "ada@example.com").Return(nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/send-reset-otp", map[string]string{"email": "ada@example.com"})
		body := testutil.AssertSuccess(s.T(), testutil.DoRequest(s.router, req), http.StatusOK)
		s.Equal("Password reset OTP sent successfully on your email", body["message"])
	})

	s.Run("reset password", func() {
		s.service.EXPECT().ResetPassword(gomock.Any(), &models.ResetPasswordRequest{
			Email: "ada@example.com", OTP: "482913", NewPassword: "n3w",
		}).Return(nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/auth/reset-password", map[string]string{
			"email": "ada@example.com", "otp": "482913", "newPassword": "n3w",
		})
		body := testutil.AssertSuccess(s.T(), testutil.DoRequest(s.router, req), http.StatusOK)
		s.Equal("Password reset successfully", body["message"])
	})
}

func (s *HandlerSuite) TestIsAuthAndUserData() {
	s.Run("is-auth", func() {
		req := withSession(testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/auth/is-auth", nil))
		body := testutil.AssertSuccess(s.T(), testutil.DoRequest(s.router, req), http.StatusOK)
		s.Equal("User is authenticated", body["message"])
	})

	s.Run("user data", func() {
		s.service.EXPECT().GetUserData(gomock.Any(), int64(5)).
			Return(&models.UserData{Name: "Ada", Email: "ada@example.com", AccountType: "visitor"}, nil)
		req := withSession(testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/user/data", nil))
		body := testutil.AssertSuccess(s.T(), testutil.DoRequest(s.router, req), http.StatusOK)
		data := body["userData"].(map[string]any)
		s.Equal("Ada", data["name"])
		s.Equal("visitor", data["accountType"])
		s.Equal(false, data["isAccountVerified"])
	})

	s.Run("user data without cookie", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/user/data", nil)
		testutil.AssertFailure(s.T(), testutil.DoRequest(s.router, req), http.StatusUnauthorized, "Unauthorized Login Again")
	})
}
