// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authModel "schoolku_backend/internals/features/users/auth/model"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	userModel "schoolku_backend/internals/features/users/user/model"
	helpers "schoolku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   REGISTER
========================== */

type RegisterInput struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

func Register(db *gorm.DB, c *fiber.Ctx, input RegisterInput) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengenkripsi password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hashed),
		Role:     constants.RoleUser,
		IsActive: true,
	}

	if err := authRepo.CreateUser(db, &user); err != nil {
		if helpers.IsUniqueViolation(err) || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau username sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */

type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"` // email atau user_name
	Password   string `json:"password"   validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx, input LoginInput) error {
	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(input.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// User belum ada -> buat baru
		newUser := userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     constants.RoleUser,
			IsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			if helpers.IsUniqueViolation(err) {
				return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   REFRESH TOKEN
========================== */

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Missing refresh secret")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh masih aktif di DB
	h := computeRefreshHash(refreshCookie, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, h)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama, terbitkan pasangan baru
	if err := authRepo.DeleteRefreshTokenByHash(db, h); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token aktif (kalau ada)
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if accessToken != "" {
			_ = authRepo.BlacklistToken(db, accessToken, nowUTC().Add(accessTTLDefault))
		}
	}

	// hapus refresh token di DB (kalau cookie ada)
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		h := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
		_ = authRepo.DeleteRefreshTokenByHash(db, h)
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   Token issuing
========================== */

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret := configs.JWTSecret
	refreshSecret := configs.JWTRefreshSecret
	if jwtSecret == "" || refreshSecret == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "JWT secret belum dikonfigurasi")
	}

	now := nowUTC()

	accessClaims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// simpan hash refresh (bukan plaintext)
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setRefreshCookie(c, refreshToken, now)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// computeRefreshHash: HMAC-SHA256 atas token, keyed pakai refresh secret.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func setRefreshCookie(c *fiber.Ctx, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"refresh_token", "access_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
		})
	}
}

func generateDummyPassword() string {
	raw := uuid.NewString() + uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return raw
	}
	return string(hashed)
}
