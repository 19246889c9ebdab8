package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mhdksr/commerce_backend/internal/hash"
	"github.com/mhdksr/commerce_backend/internal/logging"
	"github.com/mhdksr/commerce_backend/internal/models"
	"github.com/mhdksr/commerce_backend/internal/mykafka"
	"github.com/mhdksr/commerce_backend/internal/tokens"
	"github.com/mhdksr/commerce_backend/internal/transport"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

type AuthHTTP struct {
	DB            *gorm.DB
	JWTSecret     []byte
	RefreshSecret []byte
	Producer      *mykafka.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	var existing models.User
	if err := h.DB.WithContext(ctx).Where("username = ?", req.Username).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.Error("register_error", "status", 500, "reason", "db_error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	} else {
		l.Warn("register_failed", "status", 409, "reason", "user_exists")
		return echo.NewHTTPError(http.StatusConflict, "user already exists")
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: pwHash,
		Role:         "user",
	}
	if err := h.DB.WithContext(ctx).Create(&user).Error; err != nil {
		l.Error("register_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	publish(c, h.Producer, "user_events", user.ID.String(), map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	l.Info("register_success", "status", 200, "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"id": user.ID, "username": user.Username, "role": user.Role,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	var user models.User
	if err := h.DB.WithContext(ctx).Where("username = ?", req.Username).First(&user).Error; err != nil {
		l.Warn("login_failed", "status", 401, "reason", "invalid username or password")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid username or password")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	access, accessExp, err := tokens.NewAccessToken(user.ID, user.Role, h.JWTSecret, accessTTL)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	refresh, refreshExp, err := h.issueRefreshToken(ctx, user.ID)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	setAuthCookie(c, "accessToken", access, accessExp)
	setAuthCookie(c, "refreshToken", refresh, refreshExp)

	l.Info("login_success", "status", 200, "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"id": user.ID, "username": user.Username, "role": user.Role,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if cookie, err := c.Cookie("refreshToken"); err == nil && cookie.Value != "" {
		if err := h.DB.WithContext(ctx).Model(&models.RefreshToken{}).
			Where("token = ?", cookie.Value).
			Update("revoked", true).Error; err != nil {
			l.Error("logout_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	expireAuthCookie(c, "accessToken")
	expireAuthCookie(c, "refreshToken")

	l.Info("logout_success", "status", 200)
	return c.JSON(http.StatusOK, echo.Map{"detail": "logged out"})
}

// Refresh reissues the access cookie from a valid refresh token. The
// token must carry a good signature and match a stored row that is
// neither revoked nor expired. Refresh tokens rotate on every use: the
// presented one is revoked and a fresh one is set.
func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	cookie, err := c.Cookie("refreshToken")
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing refresh token")
	}

	claims, err := tokens.RefreshClaimsFromToken(cookie.Value, h.RefreshSecret)
	if err != nil || claims == nil {
		l.Warn("refresh_failed", "status", 401, "reason", "invalid refresh token")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	var stored models.RefreshToken
	if err := h.DB.WithContext(ctx).Where("token = ?", cookie.Value).First(&stored).Error; err != nil {
		l.Warn("refresh_failed", "status", 401, "reason", "unknown refresh token")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		l.Warn("refresh_failed", "status", 401, "reason", "revoked or expired")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	var user models.User
	if err := h.DB.WithContext(ctx).Where("id = ?", stored.UserID).First(&user).Error; err != nil {
		l.Warn("refresh_failed", "status", 401, "reason", "user gone")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	access, accessExp, err := tokens.NewAccessToken(user.ID, user.Role, h.JWTSecret, accessTTL)
	if err != nil {
		l.Error("refresh_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := h.DB.WithContext(ctx).Model(&stored).Update("revoked", true).Error; err != nil {
		l.Error("refresh_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	refresh, refreshExp, err := h.issueRefreshToken(ctx, user.ID)
	if err != nil {
		l.Error("refresh_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	setAuthCookie(c, "accessToken", access, accessExp)
	setAuthCookie(c, "refreshToken", refresh, refreshExp)

	l.Info("refresh_success", "status", 200, "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{"detail": "token refreshed"})
}

func (h *AuthHTTP) issueRefreshToken(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	refresh, _, exp, err := tokens.NewRefreshToken(userID, h.RefreshSecret, refreshTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := h.DB.WithContext(ctx).Create(&models.RefreshToken{
		Token:     refresh,
		UserID:    userID,
		ExpiresAt: exp,
	}).Error; err != nil {
		return "", time.Time{}, err
	}
	return refresh, exp, nil
}

func setAuthCookie(c echo.Context, name, value string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func expireAuthCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
