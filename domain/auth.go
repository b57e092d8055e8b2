package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/listingapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues a token when signature is address's signature of the login message
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
	SigningMessage() string
}
