package balance

import (
	"math"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

// MaxAmount is the largest balance or transfer the ledger stores
const MaxAmount uint64 = math.MaxInt64

// Account holds an address's native token balance in smallest units.
// PendingTags marks mutations made by unfinished settlements.
type Account struct {
	Address     domain.Address `bson:"address" json:"address"`
	Balance     uint64         `bson:"balance" json:"balance"`
	PendingTags []string       `bson:"pendingTags" json:"-"`
}

// DebitTag and CreditTag name the two sides of a settlement's transfer, so a
// self purchase keeps both sides apart.
func DebitTag(intentId string) string {
	return "debit:" + intentId
}

func CreditTag(intentId string) string {
	return "credit:" + intentId
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Account, error)
	// Credit adds amount, tagged when tag is not empty. Applying the same tag twice is a no-op.
	Credit(c ctx.Ctx, address domain.Address, amount uint64, tag string) error
	// Debit subtracts amount when the balance covers it, ErrInsufficientFunds otherwise.
	// Applying the same tag twice is a no-op.
	Debit(c ctx.Ctx, address domain.Address, amount uint64, tag string) error
	// Revert undoes the tagged mutation, reports false when it was never applied
	Revert(c ctx.Ctx, address domain.Address, amount uint64, tag string, wasDebit bool) (bool, error)
	// Release forgets tag, keeping the mutation
	Release(c ctx.Ctx, address domain.Address, tag string) error
	HasTag(c ctx.Ctx, address domain.Address, tag string) (bool, error)
}

type Usecase interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Deposit(c ctx.Ctx, address domain.Address, amount uint64) (*Account, error)
}
