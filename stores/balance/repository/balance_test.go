package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
	"github.com/x-xyz/listingapi/service/query"
	"github.com/x-xyz/listingapi/service/query/mocks"
)

var mockCtx = ctx.Background()

const (
	addr = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	tag  = "debit:8d3c2b4e"
)

type balanceRepoSuite struct {
	suite.Suite
	q  *mocks.Mongo
	im balance.Repo
}

func TestBalanceRepoSuite(t *testing.T) {
	suite.Run(t, new(balanceRepoSuite))
}

func (s *balanceRepoSuite) SetupTest() {
	s.q = &mocks.Mongo{}
	s.im = New(s.q)
}

func (s *balanceRepoSuite) TearDownTest() {
	s.q.AssertExpectations(s.T())
}

func (s *balanceRepoSuite) hasTag(applied bool) {
	n := 0
	if applied {
		n = 1
	}
	s.q.On("Count", mockCtx, domain.TableBalances, bson.M{"address": addr, "pendingTags": tag}).Return(n, nil).Once()
}

func (s *balanceRepoSuite) TestDebit() {
	selector := bson.M{
		"address":     addr,
		"balance":     bson.M{"$gte": int64(6_666_666)},
		"pendingTags": bson.M{"$ne": tag},
	}
	update := bson.M{
		"$inc":      bson.M{"balance": int64(-6_666_666)},
		"$addToSet": bson.M{"pendingTags": tag},
	}
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(nil).Once()
	s.NoError(s.im.Debit(mockCtx, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", 6_666_666, tag))
}

func (s *balanceRepoSuite) TestDebitInsufficient() {
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, mock.Anything, mock.Anything, false).Return(query.ErrNotFound).Once()
	s.hasTag(false)
	s.Equal(domain.ErrInsufficientFunds, s.im.Debit(mockCtx, addr, 10, tag))
}

func (s *balanceRepoSuite) TestDebitReplay() {
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, mock.Anything, mock.Anything, false).Return(query.ErrNotFound).Once()
	s.hasTag(true)
	s.NoError(s.im.Debit(mockCtx, addr, 10, tag))
}

func (s *balanceRepoSuite) TestDebitUntagged() {
	selector := bson.M{"address": addr, "balance": bson.M{"$gte": int64(10)}}
	update := bson.M{"$inc": bson.M{"balance": int64(-10)}}
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(query.ErrNotFound).Once()
	s.Equal(domain.ErrInsufficientFunds, s.im.Debit(mockCtx, addr, 10, ""))
}

func (s *balanceRepoSuite) account(tags ...string) {
	s.q.On("FindOne", mockCtx, domain.TableBalances, bson.M{"address": addr}, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*balance.Account) = balance.Account{Address: addr, Balance: balance.MaxAmount, PendingTags: tags}
		}).Return(nil).Once()
}

func (s *balanceRepoSuite) TestCreditNewAccount() {
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, mock.Anything, mock.Anything, false).Return(query.ErrNotFound).Once()
	s.q.On("FindOne", mockCtx, domain.TableBalances, bson.M{"address": addr}, mock.Anything).Return(query.ErrNotFound).Once()
	s.q.On("Insert", mockCtx, domain.TableBalances, &balance.Account{
		Address:     addr,
		Balance:     500,
		PendingTags: []string{tag},
	}).Return(nil).Once()
	s.NoError(s.im.Credit(mockCtx, addr, 500, tag))
}

func (s *balanceRepoSuite) TestCreditNewAccountRace() {
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, mock.Anything, mock.Anything, false).Return(query.ErrNotFound).Once()
	s.q.On("FindOne", mockCtx, domain.TableBalances, bson.M{"address": addr}, mock.Anything).Return(query.ErrNotFound).Once()
	s.q.On("Insert", mockCtx, domain.TableBalances, mock.Anything).Return(query.ErrDuplicateKey).Once()
	s.Equal(domain.ErrConflict, s.im.Credit(mockCtx, addr, 500, tag))
}

func (s *balanceRepoSuite) TestCreditExisting() {
	selector := bson.M{
		"address":     addr,
		"balance":     bson.M{"$lte": int64(balance.MaxAmount - 500)},
		"pendingTags": bson.M{"$ne": tag},
	}
	update := bson.M{
		"$inc":      bson.M{"balance": int64(500)},
		"$addToSet": bson.M{"pendingTags": tag},
	}
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(nil).Once()
	s.NoError(s.im.Credit(mockCtx, addr, 500, tag))
}

func (s *balanceRepoSuite) TestCreditOverflow() {
	s.Equal(domain.ErrMathOverflow, s.im.Credit(mockCtx, addr, balance.MaxAmount+1, tag))

	// a full account is told apart by reading, no insert is attempted
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, mock.Anything, mock.Anything, false).Return(query.ErrNotFound).Once()
	s.account("credit:other")
	s.Equal(domain.ErrMathOverflow, s.im.Credit(mockCtx, addr, balance.MaxAmount, tag))
	s.q.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything, mock.Anything)
	s.q.AssertNotCalled(s.T(), "Count", mock.Anything, mock.Anything, mock.Anything)
}

func (s *balanceRepoSuite) TestCreditReplay() {
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, mock.Anything, mock.Anything, false).Return(query.ErrNotFound).Once()
	s.account(tag)
	s.NoError(s.im.Credit(mockCtx, addr, 500, tag))
	s.q.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func (s *balanceRepoSuite) TestRevertDebit() {
	selector := bson.M{"address": addr, "pendingTags": tag}
	update := bson.M{
		"$inc":  bson.M{"balance": int64(10)},
		"$pull": bson.M{"pendingTags": tag},
	}
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(nil).Once()
	reverted, err := s.im.Revert(mockCtx, addr, 10, tag, true)
	s.NoError(err)
	s.True(reverted)

	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(query.ErrNotFound).Once()
	reverted, err = s.im.Revert(mockCtx, addr, 10, tag, true)
	s.NoError(err)
	s.False(reverted)
}

func (s *balanceRepoSuite) TestRevertCredit() {
	selector := bson.M{"address": addr, "pendingTags": tag, "balance": bson.M{"$gte": int64(10)}}
	update := bson.M{
		"$inc":  bson.M{"balance": int64(-10)},
		"$pull": bson.M{"pendingTags": tag},
	}
	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(query.ErrNotFound).Once()
	s.hasTag(false)
	reverted, err := s.im.Revert(mockCtx, addr, 10, tag, false)
	s.NoError(err)
	s.False(reverted)

	s.q.On("CustomPatch", mockCtx, domain.TableBalances, selector, update, false).Return(query.ErrNotFound).Once()
	s.hasTag(true)
	_, err = s.im.Revert(mockCtx, addr, 10, tag, false)
	s.Equal(domain.ErrInsufficientFunds, err)
}

func (s *balanceRepoSuite) TestRelease() {
	s.q.On("CustomPatch", mockCtx, domain.TableBalances,
		bson.M{"address": addr, "pendingTags": tag},
		bson.M{"$pull": bson.M{"pendingTags": tag}}, false).Return(query.ErrNotFound).Once()
	s.NoError(s.im.Release(mockCtx, addr, tag))
}

func (s *balanceRepoSuite) TestFindOne() {
	s.q.On("FindOne", mockCtx, domain.TableBalances, bson.M{"address": addr}, mock.Anything).Return(query.ErrNotFound).Once()
	_, err := s.im.FindOne(mockCtx, addr)
	s.Equal(domain.ErrNotFound, err)
}
