package listing

import (
	"time"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
)

const (
	// NameMaxBytes bounds the UTF-8 encoded listing name
	NameMaxBytes = 32
	// ImageUrlMaxBytes bounds the UTF-8 encoded image url
	ImageUrlMaxBytes = 200
)

// Listing is a product offered by Owner at a fixed USD price, paid into Treasury.
// Identity is (Owner, Name), Id is derived from it by keys.ListingId.
type Listing struct {
	Id        string         `bson:"id" json:"id"`
	Owner     domain.Address `bson:"owner" json:"owner"`
	Treasury  domain.Address `bson:"treasury" json:"treasury"`
	Name      string         `bson:"name" json:"name"`
	ImageUrl  string         `bson:"imageUrl" json:"imageUrl"`
	PriceUsd  uint64         `bson:"priceUsd" json:"priceUsd"` // cents
	IsActive  bool           `bson:"isActive" json:"isActive"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Patchable lists the mutable fields, nil means unchanged
type Patchable struct {
	ImageUrl  *string    `bson:"imageUrl,omitempty"`
	PriceUsd  *uint64    `bson:"priceUsd,omitempty"`
	IsActive  *bool      `bson:"isActive,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

// Apply returns a copy of l with p's fields set
func (l Listing) Apply(p Patchable) *Listing {
	if p.ImageUrl != nil {
		l.ImageUrl = *p.ImageUrl
	}
	if p.PriceUsd != nil {
		l.PriceUsd = *p.PriceUsd
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	if p.UpdatedAt != nil {
		l.UpdatedAt = *p.UpdatedAt
	}
	return &l
}

type CreateParams struct {
	Owner    domain.Address
	Treasury domain.Address
	Name     string
	ImageUrl string
	PriceUsd uint64
}

type UpdateParams struct {
	ImageUrl *string
	PriceUsd *uint64
}

type findAllOptions struct {
	Owner    *domain.Address
	IsActive *bool
	Page     domain.Pagination
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{Page: domain.NewPagination(0, 0)}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		owner = owner.ToLower()
		options.Owner = &owner
		return nil
	}
}

func WithActive(isActive bool) FindAllOptions {
	return func(options *findAllOptions) error {
		options.IsActive = &isActive
		return nil
	}
}

func WithPagination(offset, limit int64) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Page = domain.NewPagination(offset, limit)
		return nil
	}
}

type Repo interface {
	FindOne(c ctx.Ctx, id string) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	Create(c ctx.Ctx, listing *Listing) error
	Update(c ctx.Ctx, id string, patchable Patchable) error
}

type Usecase interface {
	Create(c ctx.Ctx, params CreateParams) (*Listing, error)
	Update(c ctx.Ctx, caller domain.Address, owner domain.Address, name string, params UpdateParams) (*Listing, error)
	Deactivate(c ctx.Ctx, caller domain.Address, owner domain.Address, name string) (*Listing, error)
	Get(c ctx.Ctx, owner domain.Address, name string) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
}
