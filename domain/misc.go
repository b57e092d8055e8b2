package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// Address is a 0x-prefixed 20-byte hex account identity, compared case insensitively
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// Bytes returns the raw 20 bytes of the address
func (a Address) Bytes() []byte {
	return common.HexToAddress(string(a)).Bytes()
}

// IsValid reports whether a is a well formed hex address
func (a Address) IsValid() bool {
	return common.IsHexAddress(string(a)) && strings.HasPrefix(a.ToLowerStr(), "0x")
}

// Table is a mongo collection name
type Table string

const (
	TableListings          Table = "listings"
	TableListingEvents     Table = "listing_events"
	TableReceipts          Table = "receipts"
	TableBalances          Table = "balances"
	TableSettlementIntents Table = "settlement_intents"
	TableHealthCheck       Table = "health_check"
)

// Pagination is a validated offset/limit pair
type Pagination struct {
	Offset int64
	Limit  int64
}

const (
	DefaultPageLimit int64 = 50
	MaxPageLimit     int64 = 200
)

// NewPagination clamps limit into (0, MaxPageLimit]
func NewPagination(offset, limit int64) Pagination {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Pagination{Offset: offset, Limit: limit}
}
