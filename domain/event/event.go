package event

import (
	"time"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

type Type string

const (
	TypeListingInitialized Type = "ListingInitialized"
	TypeListingUpdated     Type = "ListingUpdated"
	TypeListingDeactivated Type = "ListingDeactivated"
	TypeProductPurchased   Type = "ProductPurchased"
)

// Event is an append only notification about a listing.
// PriceUsd and ImageUrl carry the initial values for ListingInitialized and
// the new values for ListingUpdated, nil when not changed.
type Event struct {
	Type      Type           `bson:"type" json:"type"`
	ListingId string         `bson:"listingId" json:"listingId"`
	Admin     domain.Address `bson:"admin" json:"admin"`
	Name      string         `bson:"name" json:"name"`
	PriceUsd  *uint64        `bson:"priceUsd,omitempty" json:"priceUsd"`
	ImageUrl  *string        `bson:"imageUrl,omitempty" json:"imageUrl"`

	// purchase only
	Buyer      domain.Address `bson:"buyer,omitempty" json:"buyer,omitempty"`
	ReceiptId  string         `bson:"receiptId,omitempty" json:"receiptId,omitempty"`
	AmountPaid uint64         `bson:"amountPaid,omitempty" json:"amountPaid,omitempty"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

func NewListingInitialized(listingId string, admin domain.Address, name string, priceUsd uint64, imageUrl string, ts time.Time) *Event {
	return &Event{
		Type:      TypeListingInitialized,
		ListingId: listingId,
		Admin:     admin,
		Name:      name,
		PriceUsd:  &priceUsd,
		ImageUrl:  &imageUrl,
		Timestamp: ts,
	}
}

func NewListingUpdated(listingId string, admin domain.Address, name string, newPriceUsd *uint64, newImageUrl *string, ts time.Time) *Event {
	return &Event{
		Type:      TypeListingUpdated,
		ListingId: listingId,
		Admin:     admin,
		Name:      name,
		PriceUsd:  newPriceUsd,
		ImageUrl:  newImageUrl,
		Timestamp: ts,
	}
}

func NewListingDeactivated(listingId string, admin domain.Address, name string, ts time.Time) *Event {
	return &Event{
		Type:      TypeListingDeactivated,
		ListingId: listingId,
		Admin:     admin,
		Name:      name,
		Timestamp: ts,
	}
}

func NewProductPurchased(listingId string, admin domain.Address, name string, buyer domain.Address, receiptId string, amountPaid uint64, ts time.Time) *Event {
	return &Event{
		Type:       TypeProductPurchased,
		ListingId:  listingId,
		Admin:      admin,
		Name:       name,
		Buyer:      buyer,
		ReceiptId:  receiptId,
		AmountPaid: amountPaid,
		Timestamp:  ts,
	}
}

// Emitter publishes events, within the caller's unit of work
type Emitter interface {
	Emit(c ctx.Ctx, evt *Event) error
}

type Repo interface {
	Insert(c ctx.Ctx, evt *Event) error
	FindByListing(c ctx.Ctx, listingId string, page domain.Pagination) ([]*Event, error)
}

type Usecase interface {
	Emitter
	FindByListing(c ctx.Ctx, listingId string, page domain.Pagination) ([]*Event, error)
}
