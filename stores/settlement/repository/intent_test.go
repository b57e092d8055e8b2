package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/settlement"
	"github.com/x-xyz/listingapi/service/query"
	"github.com/x-xyz/listingapi/service/query/mocks"
)

func TestIntentCreate(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	q := &mocks.Mongo{}
	im := NewIntentRepo(q)

	intent := &settlement.Intent{Id: "intent", State: settlement.IntentStatePrepared}
	q.On("Insert", c, domain.TableSettlementIntents, intent).Return(nil).Once()
	req.NoError(im.Create(c, intent))

	q.On("Insert", c, domain.TableSettlementIntents, intent).Return(query.ErrDuplicateKey).Once()
	req.Equal(domain.ErrConflict, im.Create(c, intent))
	q.AssertExpectations(t)
}

func TestIntentUpdate(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	q := &mocks.Mongo{}
	im := NewIntentRepo(q)

	now := time.Unix(1_700_000_000, 0)
	aborted := settlement.IntentStateAborted
	reason := "insufficient funds"
	patch := settlement.IntentPatchable{State: &aborted, Reason: &reason, UpdatedAt: &now}
	selector := bson.M{"id": "intent", "state": settlement.IntentStatePrepared}
	update := bson.M{"state": aborted, "reason": reason, "updatedAt": now}

	q.On("Patch", c, domain.TableSettlementIntents, selector, update).Return(nil).Once()
	req.NoError(im.Update(c, "intent", patch))

	q.On("Patch", c, domain.TableSettlementIntents, selector, update).Return(query.ErrNotFound).Once()
	req.Equal(domain.ErrNotFound, im.Update(c, "intent", patch))

	// a stuck intent leaves the prepared set
	stuck := settlement.IntentStateStuck
	attempts := 5
	patch = settlement.IntentPatchable{State: &stuck, Attempts: &attempts, UpdatedAt: &now}
	update = bson.M{"state": stuck, "attempts": attempts, "updatedAt": now}
	q.On("Patch", c, domain.TableSettlementIntents, selector, update).Return(nil).Once()
	req.NoError(im.Update(c, "intent", patch))
	q.AssertExpectations(t)
}

func TestIntentFindPrepared(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	q := &mocks.Mongo{}
	im := NewIntentRepo(q)

	before := time.Unix(1_700_000_000, 0)
	qry := bson.M{"state": settlement.IntentStatePrepared, "createdAt": bson.M{"$lt": before}}
	q.On("Search", c, domain.TableSettlementIntents, int64(0), int64(100), "createdAt", qry, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(6).(*[]*settlement.Intent)
			*res = append(*res, &settlement.Intent{Id: "old"})
		}).Return(nil).Once()

	res, err := im.FindPrepared(c, before, 100)
	req.NoError(err)
	req.Len(res, 1)
	req.Equal("old", res[0].Id)
	q.AssertExpectations(t)
}
