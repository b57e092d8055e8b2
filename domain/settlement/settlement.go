package settlement

import (
	"time"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

// NonceMaxBytes bounds the buyer supplied purchase nonce
const NonceMaxBytes = 64

type IntentState string

const (
	IntentStatePrepared  IntentState = "prepared"
	IntentStateCommitted IntentState = "committed"
	IntentStateAborted   IntentState = "aborted"
	// IntentStateStuck is left for an operator once recovery gave up on it
	IntentStateStuck IntentState = "stuck"
)

// Intent records a purchase before funds move, so an interrupted settlement
// can be finished or undone later.
type Intent struct {
	Id        string         `bson:"id"`
	ReceiptId string         `bson:"receiptId"`
	Buyer     domain.Address `bson:"buyer"`
	ListingId string         `bson:"listingId"`
	Treasury  domain.Address `bson:"treasury"`
	Nonce     string         `bson:"nonce"`
	Amount    uint64         `bson:"amount"`
	State     IntentState    `bson:"state"`
	Reason    string         `bson:"reason,omitempty"`
	Attempts  int            `bson:"attempts"`
	CreatedAt time.Time      `bson:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

type IntentPatchable struct {
	State     *IntentState `bson:"state,omitempty"`
	Reason    *string      `bson:"reason,omitempty"`
	Attempts  *int         `bson:"attempts,omitempty"`
	UpdatedAt *time.Time   `bson:"updatedAt,omitempty"`
}

type IntentRepo interface {
	Create(c ctx.Ctx, intent *Intent) error
	FindOne(c ctx.Ctx, id string) (*Intent, error)
	Update(c ctx.Ctx, id string, patchable IntentPatchable) error
	// FindPrepared lists prepared intents created before the given time, oldest first
	FindPrepared(c ctx.Ctx, before time.Time, limit int64) ([]*Intent, error)
}

// Locker grants exclusive access to a key until unlock or ttl
type Locker interface {
	Lock(c ctx.Ctx, key string, ttl time.Duration) (unlock func(), err error)
}

type PurchaseParams struct {
	Buyer  domain.Address
	Seller domain.Address
	Name   string
	Nonce  string
}

type PurchaseResult struct {
	ReceiptId  string             `json:"receiptId"`
	ListingId  string             `json:"listingId"`
	PriceUsd   uint64             `json:"priceUsd"`
	AmountPaid uint64             `json:"amountPaid"`
	Timestamp  int64              `json:"timestamp"`
	Quote      *domain.PriceQuote `json:"quote"`
}

// Preview is what a purchase would cost right now
type Preview struct {
	ListingId string             `json:"listingId"`
	PriceUsd  uint64             `json:"priceUsd"`
	Amount    uint64             `json:"amount"`
	Quote     *domain.PriceQuote `json:"quote"`
}

type Usecase interface {
	Purchase(c ctx.Ctx, params PurchaseParams) (*PurchaseResult, error)
	Preview(c ctx.Ctx, seller domain.Address, name string) (*Preview, error)
	// Recover resolves prepared intents created before olderThan and returns how many were resolved
	Recover(c ctx.Ctx, olderThan time.Time) (int, error)
}
