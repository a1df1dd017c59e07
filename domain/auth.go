package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/listingpage/base/ctx"
)

type JwtCustomClaims struct {
	Subject string `json:"data"`
	jwt.StandardClaims
}

// AuthUsecase guards the write routes of the listing page
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, subject string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (subject string, err error)
}
