package receipt

import (
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

// Receipt proves Buyer paid AmountPaid for the listing. Id is the slot
// derived from (Buyer, ListingId, Nonce) by keys.ReceiptId.
type Receipt struct {
	Id         string         `bson:"id" json:"id"`
	Buyer      domain.Address `bson:"buyer" json:"buyer"`
	ListingId  string         `bson:"listingId" json:"listingId"`
	Nonce      string         `bson:"nonce" json:"nonce"`
	Timestamp  int64          `bson:"timestamp" json:"timestamp"` // unix seconds
	AmountPaid uint64         `bson:"amountPaid" json:"amountPaid"`
	IntentId   string         `bson:"intentId" json:"-"`
}

type Repo interface {
	// Create fails with ErrReceiptExists when the slot is taken
	Create(c ctx.Ctx, receipt *Receipt) error
	FindOne(c ctx.Ctx, id string) (*Receipt, error)
	FindByBuyer(c ctx.Ctx, buyer domain.Address, page domain.Pagination) ([]*Receipt, error)
}

type Usecase interface {
	Get(c ctx.Ctx, id string) (*Receipt, error)
	FindByBuyer(c ctx.Ctx, buyer domain.Address, page domain.Pagination) ([]*Receipt, error)
}
