package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/learnaura/feedgate/shared/domain"
	internal_errors "github.com/learnaura/feedgate/shared/errors"
	"github.com/learnaura/feedgate/shared/logger"
)

// JwtService decodes the platform-issued bearer tokens into user identity.
// Tokens are minted by the LearnAura backend with the same shared key;
// NewToken exists for tests and tooling.
type JwtService interface {
	NewToken(user domain.UserRef) (string, error)
	DecodeUser(jwtStr string) (domain.UserRef, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.UserRef) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["name"] = user.Name
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("token signing failed", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeUser(jwtStr string) (domain.UserRef, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.Remote{
				Message: fmt.Sprintf("unexpected signing method: %v", token.Header["alg"]), Status: http.StatusUnauthorized,
			}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return domain.UserRef{}, &internal_errors.Remote{Message: "invalid access token", Status: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.UserRef{}, &internal_errors.Remote{Message: "invalid token claims", Status: http.StatusUnauthorized}
	}

	uid, _ := claims["uid"].(string)
	name, _ := claims["name"].(string)
	if uid == "" {
		return domain.UserRef{}, &internal_errors.Remote{Message: "token missing user id", Status: http.StatusUnauthorized}
	}

	return domain.UserRef{Id: uid, Name: name}, nil
}
