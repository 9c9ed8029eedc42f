package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"museum/internal/auth/models"
	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/httputil"
	authmw "museum/pkg/platform/middleware/auth"
	"museum/pkg/requestcontext"
)

// Service defines the account operations used by the HTTP layer.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error)
	SendVerifyOTP(ctx context.Context, userID int64) error
	VerifyEmail(ctx context.Context, userID int64, otp string) error
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	GetUserData(ctx context.Context, userID int64) (*models.UserData, error)
}

// Handler serves /api/auth and /api/user.
type Handler struct {
	auth     Service
	sessions authmw.SessionValidator
	cookie   authmw.Cookie
	logger   *slog.Logger
}

func New(auth Service, sessions authmw.SessionValidator, cookie authmw.Cookie, logger *slog.Logger) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	requireSession := authmw.RequireSession(h.sessions, h.logger)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.HandleRegister)
		r.Post("/login", h.HandleLogin)
		r.Post("/logout", h.HandleLogout)
		r.Post("/send-reset-otp", h.HandleSendResetOTP)
		r.Post("/reset-password", h.HandleResetPassword)
		r.With(authmw.OptionalSession(h.sessions)).Post("/verify-account", h.HandleVerifyAccount)

		r.Group(func(r chi.Router) {
			r.Use(requireSession)
			r.Post("/send-verify-otp", h.HandleSendVerifyOTP)
			r.Get("/is-auth", h.HandleIsAuthenticated)
		})
	})
	r.With(requireSession).Get("/api/user/data", h.HandleGetUserData)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	session, err := h.auth.Register(ctx, req)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "register", err)
		return
	}
	h.cookie.Set(w, session.Token, requestcontext.Now(ctx))
	h.logger.InfoContext(ctx, "user registered",
		"user_id", session.UserID,
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusCreated, models.MessageResponse{Success: true, Message: "User registered successfully"})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	session, err := h.auth.Login(ctx, req)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "login", err)
		return
	}
	h.cookie.Set(w, session.Token, requestcontext.Now(ctx))
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Login successful"})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	h.cookie.Clear(w)
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Logout successful"})
}

func (h *Handler) HandleSendVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.sessionUser(ctx, w)
	if !ok {
		return
	}
	if err := h.auth.SendVerifyOTP(ctx, userID); err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "send verify otp", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.VerifyOTPSentResponse{
		Success: true,
		Message: "OTP sent successfully on your email",
		UserID:  userID,
	})
}

func (h *Handler) HandleVerifyAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.VerifyAccountRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	userID := req.ID
	if userID == 0 {
		userID, _ = requestcontext.UserID(ctx)
	}
	if err := h.auth.VerifyEmail(ctx, userID, req.OTP); err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "verify account", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Account verified successfully"})
}

func (h *Handler) HandleIsAuthenticated(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "User is authenticated"})
}

func (h *Handler) HandleSendResetOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.SendResetOTPRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.auth.SendResetOTP(ctx, req.Email); err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "send reset otp", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Password reset OTP sent successfully on your email"})
}

func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.ResetPasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.auth.ResetPassword(ctx, req); err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "reset password", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Password reset successfully"})
}

func (h *Handler) HandleGetUserData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.sessionUser(ctx, w)
	if !ok {
		return
	}
	data, err := h.auth.GetUserData(ctx, userID)
	if err != nil {
		httputil.WriteServiceError(w, h.logger, ctx, "get user data", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.UserDataResponse{Success: true, UserData: data})
}

// sessionUser reads the id placed by RequireSession.
func (h *Handler) sessionUser(ctx context.Context, w http.ResponseWriter) (int64, bool) {
	userID, ok := requestcontext.UserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id missing from context despite session middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Unauthorized Login Again"))
		return 0, false
	}
	return userID, true
}
