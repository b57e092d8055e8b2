package usecase_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/ethereum"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/stores/auth/usecase"
)

const signingMsg = "Sign in to the listing api"

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	key, pub, err := ethereum.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*pub).Hex())
	sig, err := ethereum.SignMsg(key, []byte(signingMsg))
	req.NoError(err)

	u := usecase.New("jwt-secret", signingMsg)
	assert.Equal(t, signingMsg, u.SigningMessage())

	tkn, err := u.SignToken(c, address, sig)
	req.NoError(err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(c, tkn)
	req.NoError(err)
	assert.Equal(t, address.ToLowerStr(), ads)

	// another secret does not accept the token
	_, err = usecase.New("other-secret", signingMsg).ParseToken(c, tkn)
	assert.Equal(t, domain.ErrInvalidSignature, err)
}

func TestSignTokenRejected(t *testing.T) {
	c := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)

	key, _, err := ethereum.GenerateKey()
	require.NoError(t, err)
	_, otherPub, err := ethereum.GenerateKey()
	require.NoError(t, err)
	other := domain.Address(crypto.PubkeyToAddress(*otherPub).Hex())

	sig, err := ethereum.SignMsg(key, []byte(signingMsg))
	require.NoError(t, err)
	_, err = u.SignToken(c, other, sig)
	assert.Equal(t, domain.ErrInvalidSignature, err)

	wrongMsg, err := ethereum.SignMsg(key, []byte("something else"))
	require.NoError(t, err)
	_, err = u.SignToken(c, domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()), wrongMsg)
	assert.Equal(t, domain.ErrInvalidSignature, err)

	_, err = u.SignToken(c, other, "0xzz")
	assert.Equal(t, domain.ErrInvalidSignature, err)

	_, err = u.SignToken(c, "not-an-address", sig)
	assert.Equal(t, domain.ErrInvalidAddress, err)
}

func TestParseMalformedToken(t *testing.T) {
	_, err := usecase.New("jwt-secret", signingMsg).ParseToken(ctx.Background(), "a.b.c")
	assert.Equal(t, domain.ErrInvalidSignature, err)
}
