package api

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dan13ram/scout-mint-validator/common"
)

// ScoutClaims is the session token issued by the web app.
type ScoutClaims struct {
	ScoutID string `json:"scout_id"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens. It never issues them.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func (a *Authenticator) ScoutID(r *http.Request) (string, error) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		return "", common.NewError(common.ErrorKindUnauthenticated, "missing bearer token", nil)
	}

	claims := &ScoutClaims{}
	token, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", common.NewError(common.ErrorKindUnauthenticated, "invalid bearer token", err)
	}
	if claims.ScoutID == "" {
		return "", common.NewError(common.ErrorKindUnauthenticated, "token has no scout", nil)
	}
	return claims.ScoutID, nil
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}
