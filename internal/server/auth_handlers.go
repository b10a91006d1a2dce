package server

import (
	"fmt"
	"strconv"
	"time"

	"govportal/internal/identity"
	"govportal/internal/models"
	"govportal/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer     = "govportal-api"
	tokenAudience   = "govportal-client"
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// SignUp handles POST /api/auth/signup
// @Summary Citizen signup
// @Description Register a new portal account keyed by in-world static ID
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{static_id=string,nickname=string,password=string,discord=string} true "Signup request"
// @Success 201 {object} object{token=string,refresh_token=string,profile=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) SignUp(c *fiber.Ctx) error {
	var req struct {
		StaticID string `json:"static_id"`
		Nickname string `json:"nickname"`
		Password string `json:"password"`
		Discord  string `json:"discord"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateStaticID(req.StaticID); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateNickname(req.Nickname); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	existing, err := s.profileRepo.GetByStaticID(c.Context(), req.StaticID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("An account with this static ID already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// The portal never asks citizens for a real mailbox; the login is a
	// synthetic address derived from the static ID.
	profile := &models.Profile{
		Nickname: req.Nickname,
		StaticID: req.StaticID,
		Email:    identity.TechnicalLogin(req.StaticID, s.config.LoginDomain),
		Password: string(hashedPassword),
		Discord:  req.Discord,
		Faction:  models.FactionCivilian,
		GovRole:  models.GovRoleNone,
	}
	if createErr := s.profileRepo.Create(c.Context(), profile); createErr != nil {
		return respondServiceError(c, createErr)
	}

	token, refresh, err := s.issueTokenPair(c, profile.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":         token,
		"refresh_token": refresh,
		"profile":       profile,
	})
}

// Login handles POST /api/auth/login
// @Summary Citizen login
// @Description Authenticate by static ID (or technical login) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{static_id=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,refresh_token=string,profile=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		StaticID string `json:"static_id"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileRepo.GetByStaticID(c.Context(), req.StaticID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		// Allow logging in with the technical address directly.
		profile, err = s.profileRepo.GetByEmail(c.Context(), req.StaticID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, refresh, err := s.issueTokenPair(c, profile.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token":         token,
		"refresh_token": refresh,
		"profile":       profile,
	})
}

// Refresh handles POST /api/auth/refresh
// @Summary Rotate tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{refresh_token=string} true "Refresh request"
// @Success 200 {object} object{token=string,refresh_token=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh [post]
func (s *Server) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Refresh token is required"))
	}
	if s.redis == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewInternalError(fmt.Errorf("session store unavailable")))
	}

	key := "refresh:" + req.RefreshToken
	idStr, err := s.redis.Get(c.Context(), key).Result()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid or expired refresh token"))
	}
	profileID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid refresh token"))
	}

	// Single-use: rotate the refresh token on every exchange.
	s.redis.Del(c.Context(), key)

	token, refresh, err := s.issueTokenPair(c, uint(profileID))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{
		"token":         token,
		"refresh_token": refresh,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Revoke the refresh token and blacklist the current access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{refresh_token=string} false "Logout request"
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.BodyParser(&req)

	if s.redis != nil {
		if req.RefreshToken != "" {
			s.redis.Del(c.Context(), "refresh:"+req.RefreshToken)
		}
		if jti, exp, ok := s.currentTokenJTI(c); ok {
			ttl := time.Until(exp)
			if ttl > 0 {
				s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
			}
		}
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// issueTokenPair creates an access token plus a Redis-backed refresh token.
// Without Redis only the access token is issued.
func (s *Server) issueTokenPair(c *fiber.Ctx, profileID uint) (string, string, error) {
	token, err := s.generateToken(profileID)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if s.redis != nil {
		refresh = uuid.New().String()
		if err := s.redis.Set(c.Context(), "refresh:"+refresh,
			strconv.FormatUint(uint64(profileID), 10), refreshTokenTTL).Err(); err != nil {
			return "", "", err
		}
	}
	return token, refresh, nil
}

// generateToken creates a JWT token for the given profile ID.
func (s *Server) generateToken(profileID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(profileID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(accessTokenTTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID so individual tokens can be revoked.
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// currentTokenJTI extracts the jti and expiry of the bearer token, if any.
func (s *Server) currentTokenJTI(c *fiber.Ctx) (string, time.Time, bool) {
	authHeader := c.Get("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		return "", time.Time{}, false
	}

	token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", time.Time{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, false
	}
	jti, _ := claims["jti"].(string)
	expFloat, _ := claims["exp"].(float64)
	if jti == "" || expFloat == 0 {
		return "", time.Time{}, false
	}
	return jti, time.Unix(int64(expFloat), 0), true
}
