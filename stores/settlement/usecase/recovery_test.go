package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/receipt"
	"github.com/x-xyz/listingapi/domain/settlement"
)

func (s *SettlementTestSuite) intentOf(id string, receiptId string) *settlement.Intent {
	return &settlement.Intent{
		Id:        id,
		ReceiptId: receiptId,
		Buyer:     buyer,
		Treasury:  treasury,
		Amount:    expectedAmount,
		State:     settlement.IntentStatePrepared,
	}
}

func (s *SettlementTestSuite) TestRecover() {
	olderThan := mockNow.Add(-time.Minute)
	committed := s.intentOf("intent-a", "receipt-a")
	orphan := s.intentOf("intent-b", "receipt-b")
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).
		Return([]*settlement.Intent{committed, orphan}, nil).Once()

	s.receipt.On("FindOne", mock.Anything, "receipt-a").Return(&receipt.Receipt{Id: "receipt-a", IntentId: "intent-a"}, nil).Once()
	s.intent.On("Update", mock.Anything, "intent-a", isState(settlement.IntentStateCommitted)).Return(nil).Once()
	s.balance.On("Release", mock.Anything, buyer, "debit:intent-a").Return(nil).Once()
	s.balance.On("Release", mock.Anything, treasury, "credit:intent-a").Return(nil).Once()

	s.receipt.On("FindOne", mock.Anything, "receipt-b").Return(nil, domain.ErrNotFound).Once()
	s.balance.On("Revert", mock.Anything, treasury, expectedAmount, "credit:intent-b", false).Return(true, nil).Once()
	s.balance.On("Revert", mock.Anything, buyer, expectedAmount, "debit:intent-b", true).Return(true, nil).Once()
	s.intent.On("Update", mock.Anything, "intent-b", mock.MatchedBy(func(p settlement.IntentPatchable) bool {
		return p.State != nil && *p.State == settlement.IntentStateAborted && p.Reason != nil && *p.Reason == reasonRecovered
	})).Return(nil).Once()

	n, err := s.im.Recover(mockCtx, olderThan)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *SettlementTestSuite) TestRecoverReceiptOfOtherIntent() {
	olderThan := mockNow.Add(-time.Minute)
	stale := s.intentOf("intent-c", "receipt-c")
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).
		Return([]*settlement.Intent{stale}, nil).Once()
	s.receipt.On("FindOne", mock.Anything, "receipt-c").Return(&receipt.Receipt{Id: "receipt-c", IntentId: "intent-z"}, nil).Once()
	s.balance.On("Revert", mock.Anything, treasury, expectedAmount, "credit:intent-c", false).Return(false, nil).Once()
	s.balance.On("Revert", mock.Anything, buyer, expectedAmount, "debit:intent-c", true).Return(false, nil).Once()
	// another worker closed it first
	s.intent.On("Update", mock.Anything, "intent-c", isState(settlement.IntentStateAborted)).Return(domain.ErrNotFound).Once()

	n, err := s.im.Recover(mockCtx, olderThan)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *SettlementTestSuite) TestRecoverCountsFailures() {
	olderThan := mockNow.Add(-time.Minute)
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).
		Return([]*settlement.Intent{s.intentOf("intent-d", "receipt-d")}, nil).Once()
	s.receipt.On("FindOne", mock.Anything, "receipt-d").Return(nil, errors.New("timeout")).Once()
	s.intent.On("Update", mock.Anything, "intent-d", mock.MatchedBy(func(p settlement.IntentPatchable) bool {
		return p.State == nil && p.Attempts != nil && *p.Attempts == 1 && p.Reason != nil && *p.Reason == "timeout"
	})).Return(nil).Once()

	n, err := s.im.Recover(mockCtx, olderThan)
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *SettlementTestSuite) TestRecoverParksUnresolvable() {
	olderThan := mockNow.Add(-time.Minute)
	// credits spent before the purchase could be undone fill a whole batch
	intents := make([]*settlement.Intent, recoverBatchMax)
	for i := range intents {
		intents[i] = s.intentOf(fmt.Sprintf("intent-%d", i), fmt.Sprintf("receipt-%d", i))
		intents[i].Attempts = recoverAttemptsMax - 1
	}
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).Return(intents, nil).Once()
	s.receipt.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Times(recoverBatchMax)
	s.balance.On("Revert", mock.Anything, treasury, expectedAmount, mock.Anything, false).
		Return(false, domain.ErrInsufficientFunds).Times(recoverBatchMax)
	s.intent.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(p settlement.IntentPatchable) bool {
		return p.State != nil && *p.State == settlement.IntentStateStuck &&
			p.Attempts != nil && *p.Attempts == recoverAttemptsMax &&
			p.Reason != nil && *p.Reason == domain.ErrInsufficientFunds.Error()
	})).Return(nil).Times(recoverBatchMax)

	n, err := s.im.Recover(mockCtx, olderThan)
	s.Require().NoError(err)
	s.Equal(0, n)

	// the next sweep reaches newer intents
	newer := s.intentOf("intent-new", "receipt-new")
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).
		Return([]*settlement.Intent{newer}, nil).Once()
	s.receipt.On("FindOne", mock.Anything, "receipt-new").Return(&receipt.Receipt{Id: "receipt-new", IntentId: "intent-new"}, nil).Once()
	s.intent.On("Update", mock.Anything, "intent-new", isState(settlement.IntentStateCommitted)).Return(nil).Once()
	s.balance.On("Release", mock.Anything, buyer, "debit:intent-new").Return(nil).Once()
	s.balance.On("Release", mock.Anything, treasury, "credit:intent-new").Return(nil).Once()

	n, err = s.im.Recover(mockCtx, olderThan)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *SettlementTestSuite) TestRecoverNothing() {
	olderThan := mockNow.Add(-time.Minute)
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).Return(nil, nil).Once()

	n, err := s.im.Recover(mockCtx, olderThan)
	s.Require().NoError(err)
	s.Equal(0, n)

	dbErr := errors.New("db down")
	s.intent.On("FindPrepared", mock.Anything, olderThan, int64(recoverBatchMax)).Return(nil, dbErr).Once()
	_, err = s.im.Recover(mockCtx, olderThan)
	s.Equal(dbErr, err)
}
