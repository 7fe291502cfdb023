package usersvc

import (
	"errors"
	"time"

	"vidtube/config"
	"vidtube/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/users/models"
)

// AccessClaims là claims của access token
type AccessClaims struct {
	UserID   string `json:"userId"`
	UserName string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// RefreshClaims là claims của refresh token, chỉ chứa userId
type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenPair là cặp access/refresh token trả về cho client
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService ký và xác minh JWT cho phiên đăng nhập.
// Access và refresh token dùng secret và TTL riêng biệt.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService tạo TokenService từ cấu hình server
func NewTokenService(cfg *config.Configuration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.JwtAccessSecret),
		refreshSecret: []byte(cfg.JwtRefreshSecret),
		accessTTL:     time.Duration(cfg.JwtAccessExpiry) * time.Second,
		refreshTTL:    time.Duration(cfg.JwtRefreshExpiry) * time.Second,
	}
}

// GenerateTokenPair sinh cặp access/refresh token cho user
func (s *TokenService) GenerateTokenPair(user *usermodels.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := AccessClaims{
		UserID:   user.ID.Hex(),
		UserName: user.UserName,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(s.accessSecret)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể ký access token", common.StatusInternalServerError, err)
	}

	refreshClaims := RefreshClaims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(s.refreshSecret)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể ký refresh token", common.StatusInternalServerError, err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken xác minh access token và trả về userId trong claims
func (s *TokenService) VerifyAccessToken(tokenString string) (primitive.ObjectID, *AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(tokenString, claims, s.accessSecret); err != nil {
		return primitive.NilObjectID, nil, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, nil, common.ErrTokenInvalid
	}

	return userID, claims, nil
}

// VerifyRefreshToken xác minh refresh token và trả về userId trong claims
func (s *TokenService) VerifyRefreshToken(tokenString string) (primitive.ObjectID, error) {
	claims := &RefreshClaims{}
	if err := s.parse(tokenString, claims, s.refreshSecret); err != nil {
		return primitive.NilObjectID, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}

	return userID, nil
}

// parse xác minh chữ ký HS256 và hạn token, map lỗi jwt sang taxonomy chung
func (s *TokenService) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrTokenInvalid
	}
	if !token.Valid {
		return common.ErrTokenInvalid
	}
	return nil
}
