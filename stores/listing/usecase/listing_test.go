package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/ptr"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/event"
	eventmocks "github.com/x-xyz/listingapi/domain/event/mocks"
	"github.com/x-xyz/listingapi/domain/keys"
	"github.com/x-xyz/listingapi/domain/listing"
	"github.com/x-xyz/listingapi/domain/listing/mocks"
)

var (
	mockCtx  = ctx.Background()
	mockNow  = time.Unix(1700000000, 0)
	owner    = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	treasury = domain.Address("0x8ba1f109551bd432803012645ac136ddd64dba72")
	stranger = domain.Address("0x0000000000000000000000000000000000000bad")
)

// passTx runs fn in place, the way a single node transaction would
type passTx struct{}

func (passTx) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	return fn(c)
}

type ListingUsecaseTestSuite struct {
	suite.Suite
	repo    *mocks.Repo
	emitter *eventmocks.Emitter
	im      listing.Usecase
}

func TestListingUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(ListingUsecaseTestSuite))
}

func (s *ListingUsecaseTestSuite) SetupTest() {
	timeNow = func() time.Time { return mockNow }
	s.repo = &mocks.Repo{}
	s.emitter = &eventmocks.Emitter{}
	s.im = New(&ListingUseCaseCfg{
		Repo:       s.repo,
		Transactor: passTx{},
		Emitter:    s.emitter,
	})
}

func (s *ListingUsecaseTestSuite) TearDownTest() {
	timeNow = time.Now
	s.repo.AssertExpectations(s.T())
	s.emitter.AssertExpectations(s.T())
}

func (s *ListingUsecaseTestSuite) activeListing(name string) *listing.Listing {
	return &listing.Listing{
		Id:        keys.ListingId(owner, name),
		Owner:     owner,
		Treasury:  treasury,
		Name:      name,
		ImageUrl:  "https://img.example/1.png",
		PriceUsd:  100,
		IsActive:  true,
		CreatedAt: mockNow,
		UpdatedAt: mockNow,
	}
}

func (s *ListingUsecaseTestSuite) TestCreate() {
	name := strings.Repeat("a", listing.NameMaxBytes)
	expected := s.activeListing(name)

	s.repo.On("Create", mock.Anything, expected).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, event.NewListingInitialized(expected.Id, owner, name, 100, expected.ImageUrl, mockNow)).Return(nil).Once()

	l, err := s.im.Create(mockCtx, listing.CreateParams{
		Owner:    owner,
		Treasury: treasury,
		Name:     name,
		ImageUrl: expected.ImageUrl,
		PriceUsd: 100,
	})
	s.Require().NoError(err)
	s.Equal(expected, l)
}

func (s *ListingUsecaseTestSuite) TestCreateBounds() {
	tests := []struct {
		desc   string
		params listing.CreateParams
		err    error
	}{
		{
			desc:   "33 byte name",
			params: listing.CreateParams{Owner: owner, Treasury: treasury, Name: strings.Repeat("a", 33)},
			err:    domain.ErrNameTooLong,
		},
		{
			desc:   "multi byte name over 32 bytes",
			params: listing.CreateParams{Owner: owner, Treasury: treasury, Name: strings.Repeat("é", 17)},
			err:    domain.ErrNameTooLong,
		},
		{
			desc:   "201 byte url",
			params: listing.CreateParams{Owner: owner, Treasury: treasury, Name: "a", ImageUrl: strings.Repeat("u", 201)},
			err:    domain.ErrUrlTooLong,
		},
		{
			desc:   "price beyond ledger range",
			params: listing.CreateParams{Owner: owner, Treasury: treasury, Name: "a", PriceUsd: 1 << 63},
			err:    domain.ErrMathOverflow,
		},
		{
			desc:   "invalid utf-8 name",
			params: listing.CreateParams{Owner: owner, Treasury: treasury, Name: "caf\xe9"},
			err:    domain.ErrBadParamInput,
		},
		{
			desc:   "invalid utf-8 url",
			params: listing.CreateParams{Owner: owner, Treasury: treasury, Name: "a", ImageUrl: "https://x.io/\xff.png"},
			err:    domain.ErrBadParamInput,
		},
		{
			desc:   "bad treasury",
			params: listing.CreateParams{Owner: owner, Treasury: "0x1234", Name: "a"},
			err:    domain.ErrInvalidAddress,
		},
	}
	for _, t := range tests {
		l, err := s.im.Create(mockCtx, t.params)
		s.Equal(t.err, err, t.desc)
		s.Nil(l, t.desc)
	}
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ListingUsecaseTestSuite) TestCreateDuplicate() {
	s.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()
	_, err := s.im.Create(mockCtx, listing.CreateParams{Owner: owner, Treasury: treasury, Name: "coffee"})
	s.Equal(domain.ErrConflict, err)
	s.emitter.AssertNotCalled(s.T(), "Emit", mock.Anything, mock.Anything)
}

func (s *ListingUsecaseTestSuite) TestCreateEmitFailure() {
	errEmit := errors.New("write conflict")
	s.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.Anything).Return(errEmit).Once()
	_, err := s.im.Create(mockCtx, listing.CreateParams{Owner: owner, Treasury: treasury, Name: "coffee"})
	s.Equal(errEmit, err)
}

func (s *ListingUsecaseTestSuite) TestUpdatePriceOnly() {
	l := s.activeListing("coffee")
	later := mockNow.Add(time.Hour)
	timeNow = func() time.Time { return later }

	s.repo.On("FindOne", mock.Anything, l.Id).Return(l, nil).Once()
	s.repo.On("Update", mock.Anything, l.Id, listing.Patchable{PriceUsd: ptr.Uint64(250), UpdatedAt: &later}).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(evt *event.Event) bool {
		return evt.Type == event.TypeListingUpdated &&
			evt.ImageUrl == nil &&
			evt.PriceUsd != nil && *evt.PriceUsd == 250 &&
			evt.Admin == owner && evt.Name == "coffee"
	})).Return(nil).Once()

	res, err := s.im.Update(mockCtx, owner, owner, "coffee", listing.UpdateParams{PriceUsd: ptr.Uint64(250)})
	s.Require().NoError(err)
	s.Equal(uint64(250), res.PriceUsd)
	s.Equal(l.ImageUrl, res.ImageUrl)
	s.Equal(later, res.UpdatedAt)
}

func (s *ListingUsecaseTestSuite) TestUpdateInactive() {
	l := s.activeListing("coffee")
	l.IsActive = false

	s.repo.On("FindOne", mock.Anything, l.Id).Return(l, nil).Once()
	s.repo.On("Update", mock.Anything, l.Id, mock.Anything).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.Update(mockCtx, owner, owner, "coffee", listing.UpdateParams{ImageUrl: ptr.String("https://img.example/2.png")})
	s.Require().NoError(err)
	s.False(res.IsActive)
	s.Equal("https://img.example/2.png", res.ImageUrl)
}

func (s *ListingUsecaseTestSuite) TestUpdateRejected() {
	_, err := s.im.Update(mockCtx, stranger, owner, "coffee", listing.UpdateParams{PriceUsd: ptr.Uint64(1)})
	s.Equal(domain.ErrUnauthorized, err)

	_, err = s.im.Update(mockCtx, owner, owner, "coffee", listing.UpdateParams{ImageUrl: ptr.String(strings.Repeat("u", 201))})
	s.Equal(domain.ErrUrlTooLong, err)

	_, err = s.im.Update(mockCtx, owner, owner, "coffee", listing.UpdateParams{ImageUrl: ptr.String("https://x.io/\xff.png")})
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.Update(mockCtx, owner, owner, "coffee", listing.UpdateParams{PriceUsd: ptr.Uint64(^uint64(0))})
	s.Equal(domain.ErrMathOverflow, err)

	s.repo.On("FindOne", mock.Anything, keys.ListingId(owner, "nothing")).Return(nil, domain.ErrNotFound).Once()
	_, err = s.im.Update(mockCtx, owner, owner, "nothing", listing.UpdateParams{PriceUsd: ptr.Uint64(1)})
	s.Equal(domain.ErrNotFound, err)

	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ListingUsecaseTestSuite) TestDeactivate() {
	l := s.activeListing("coffee")
	s.repo.On("FindOne", mock.Anything, l.Id).Return(l, nil).Once()
	s.repo.On("Update", mock.Anything, l.Id, listing.Patchable{IsActive: ptr.Bool(false), UpdatedAt: &mockNow}).Return(nil).Once()
	s.emitter.On("Emit", mock.Anything, event.NewListingDeactivated(l.Id, owner, "coffee", mockNow)).Return(nil).Once()

	res, err := s.im.Deactivate(mockCtx, owner, owner, "coffee")
	s.Require().NoError(err)
	s.False(res.IsActive)

	// a second call finds it inactive and changes nothing
	s.repo.On("FindOne", mock.Anything, l.Id).Return(res, nil).Once()
	again, err := s.im.Deactivate(mockCtx, owner, owner, "coffee")
	s.Require().NoError(err)
	s.False(again.IsActive)
}

func (s *ListingUsecaseTestSuite) TestDeactivateUnauthorized() {
	_, err := s.im.Deactivate(mockCtx, stranger, owner, "coffee")
	s.Equal(domain.ErrUnauthorized, err)
	s.repo.AssertNotCalled(s.T(), "FindOne", mock.Anything, mock.Anything)
}

func (s *ListingUsecaseTestSuite) TestGet() {
	l := s.activeListing("coffee")
	s.repo.On("FindOne", mock.Anything, l.Id).Return(l, nil).Once()
	res, err := s.im.Get(mockCtx, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", "coffee")
	s.Require().NoError(err)
	s.Equal(l, res)
}
