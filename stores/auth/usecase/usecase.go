package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/ethereum"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
)

const tokenTtl = 24 * time.Hour

var timeNow = time.Now

type impl struct {
	jwtSecret  []byte
	signingMsg string
}

// New signs tokens for callers proving they own an address by signing signingMsg
func New(jwtSecret string, signingMsg string) domain.AuthUsecase {
	return &impl{
		jwtSecret:  []byte(jwtSecret),
		signingMsg: signingMsg,
	}
}

func (im *impl) SigningMessage() string {
	return im.signingMsg
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !address.IsValid() {
		return "", domain.ErrInvalidAddress
	}

	if ok, err := ethereum.ValidateMsgSignature([]byte(im.signingMsg), signature, string(address)); err != nil {
		ctx.WithFields(log.Fields{"err": err, "address": address}).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if err == nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return claims.Address, nil
		}
	}

	return "", domain.ErrInvalidSignature
}
