package keys

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/x-xyz/listingapi/domain"
)

const (
	// ListingSeed prefixes listing identity derivation
	ListingSeed = "LISTING_SEED"
	// ReceiptSeed prefixes receipt slot derivation
	ReceiptSeed = "RECEIPT_SEED"

	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxReceiptSlot is used for prefixing the purchase lock of a receipt slot
	PfxReceiptSlot = "receiptSlot"
	// PfxOracleQuote is used for prefixing cached oracle quotes
	PfxOracleQuote = "oracleQuote"
)

// ListingId derives the identity of the listing owned by owner under name.
// Same inputs always give the same id, so (owner, name) can exist at most once.
func ListingId(owner domain.Address, name string) string {
	return crypto.Keccak256Hash(
		[]byte(ListingSeed),
		owner.Bytes(),
		[]byte(name),
	).Hex()
}

// ReceiptId derives the receipt slot of buyer's purchase of listingId with nonce
func ReceiptId(buyer domain.Address, listingId string, nonce string) string {
	return crypto.Keccak256Hash(
		[]byte(ReceiptSeed),
		buyer.Bytes(),
		common.HexToHash(listingId).Bytes(),
		[]byte(nonce),
	).Hex()
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first component of a redis key
func GetPrefix(key string) string {
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i]
	}
	return key
}
