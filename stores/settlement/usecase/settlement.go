package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/listingapi/base/conversion"
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/base/metrics"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
	"github.com/x-xyz/listingapi/domain/event"
	"github.com/x-xyz/listingapi/domain/keys"
	"github.com/x-xyz/listingapi/domain/listing"
	"github.com/x-xyz/listingapi/domain/receipt"
	"github.com/x-xyz/listingapi/domain/settlement"
)

const (
	defaultLockTtl  = 30 * time.Second
	defaultWorkers  = 8
	recoverBatchMax = 100
	// recoverAttemptsMax failed resolutions turn an intent stuck
	recoverAttemptsMax = 5
)

var (
	timeNow = time.Now
	met     = metrics.New("settlement")
)

type SettlementUseCaseCfg struct {
	Listing    listing.Repo
	Balance    balance.Repo
	Receipt    receipt.Repo
	Intent     settlement.IntentRepo
	Locker     settlement.Locker
	Oracle     domain.OracleUsecase
	Emitter    event.Emitter
	Transactor domain.Transactor

	// UnitsPerToken is the number of smallest units in one native token
	UnitsPerToken uint64
	// LockTtl bounds how long a receipt slot stays locked by one purchase
	LockTtl time.Duration
	// RecoveryWorkers resolves that many intents in parallel
	RecoveryWorkers int
}

type impl struct {
	listing  listing.Repo
	balance  balance.Repo
	receipt  receipt.Repo
	intent   settlement.IntentRepo
	locker   settlement.Locker
	oracle   domain.OracleUsecase
	emitter  event.Emitter
	tx       domain.Transactor
	units    uint64
	lockTtl  time.Duration
	nWorkers int
}

func New(cfg *SettlementUseCaseCfg) settlement.Usecase {
	im := &impl{
		listing:  cfg.Listing,
		balance:  cfg.Balance,
		receipt:  cfg.Receipt,
		intent:   cfg.Intent,
		locker:   cfg.Locker,
		oracle:   cfg.Oracle,
		emitter:  cfg.Emitter,
		tx:       cfg.Transactor,
		units:    cfg.UnitsPerToken,
		lockTtl:  cfg.LockTtl,
		nWorkers: cfg.RecoveryWorkers,
	}
	if im.units == 0 {
		im.units = conversion.LamportsPerToken
	}
	if im.lockTtl <= 0 {
		im.lockTtl = defaultLockTtl
	}
	if im.nWorkers <= 0 {
		im.nWorkers = defaultWorkers
	}
	return im
}

// quote loads the listing and prices it at now
func (im *impl) quote(c ctx.Ctx, listingId string, now time.Time) (*listing.Listing, *domain.PriceQuote, uint64, error) {
	l, err := im.listing.FindOne(c, listingId)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": listingId}).Error("listing.FindOne failed")
		return nil, nil, 0, err
	}
	if !l.IsActive {
		return nil, nil, 0, domain.ErrListingClosed
	}

	q, err := im.oracle.GetFreshQuote(c, now.Unix())
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": listingId}).Error("oracle.GetFreshQuote failed")
		return nil, nil, 0, err
	}

	amount, err := conversion.ConvertQuote(l.PriceUsd, q, im.units)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "priceUsd": l.PriceUsd, "quote": q}).Error("conversion.ConvertQuote failed")
		return nil, nil, 0, err
	}
	if amount > balance.MaxAmount {
		c.WithFields(log.Fields{"priceUsd": l.PriceUsd, "amount": amount}).Error("amount out of ledger range")
		return nil, nil, 0, domain.ErrMathOverflow
	}
	return l, q, amount, nil
}

func (im *impl) Preview(c ctx.Ctx, seller domain.Address, name string) (*settlement.Preview, error) {
	listingId := keys.ListingId(seller, name)
	l, q, amount, err := im.quote(c, listingId, timeNow())
	if err != nil {
		return nil, err
	}
	return &settlement.Preview{
		ListingId: listingId,
		PriceUsd:  l.PriceUsd,
		Amount:    amount,
		Quote:     q,
	}, nil
}

func (im *impl) Purchase(c ctx.Ctx, params settlement.PurchaseParams) (*settlement.PurchaseResult, error) {
	if !params.Buyer.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	if len(params.Nonce) > settlement.NonceMaxBytes {
		return nil, domain.ErrBadParamInput
	}
	buyer := params.Buyer.ToLower()
	listingId := keys.ListingId(params.Seller, params.Name)
	receiptId := keys.ReceiptId(buyer, listingId, params.Nonce)
	c = ctx.WithValues(c, map[string]interface{}{
		"buyer":     buyer,
		"listingId": listingId,
		"receiptId": receiptId,
	})

	unlock, err := im.locker.Lock(c, receiptId, im.lockTtl)
	if errors.Is(err, domain.ErrConflict) {
		return nil, domain.ErrReceiptExists
	} else if err != nil {
		c.WithField("err", err).Error("locker.Lock failed")
		return nil, err
	}
	defer unlock()

	if _, err := im.receipt.FindOne(c, receiptId); err == nil {
		return nil, domain.ErrReceiptExists
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("receipt.FindOne failed")
		return nil, err
	}

	now := timeNow()
	l, q, amount, err := im.quote(c, listingId, now)
	if err != nil {
		met.BumpSum("purchase.aborted", 1, "kind", string(domain.KindOf(err)))
		return nil, err
	}
	c.WithFields(log.Fields{
		"price":    q.DisplayPrice().String(),
		"conf":     q.DisplayConf().String(),
		"priceUsd": l.PriceUsd,
		"amount":   amount,
	}).Info("purchase quoted")

	intent := &settlement.Intent{
		Id:        uuid.NewString(),
		ReceiptId: receiptId,
		Buyer:     buyer,
		ListingId: listingId,
		Treasury:  l.Treasury,
		Nonce:     params.Nonce,
		Amount:    amount,
		State:     settlement.IntentStatePrepared,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.intent.Create(c, intent); err != nil {
		c.WithField("err", err).Error("intent.Create failed")
		return nil, err
	}

	r := &receipt.Receipt{
		Id:         receiptId,
		Buyer:      buyer,
		ListingId:  listingId,
		Nonce:      params.Nonce,
		Timestamp:  now.Unix(),
		AmountPaid: amount,
		IntentId:   intent.Id,
	}
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.balance.Debit(c, buyer, amount, balance.DebitTag(intent.Id)); err != nil {
			c.WithField("err", err).Error("balance.Debit failed")
			return err
		}
		if err := im.balance.Credit(c, l.Treasury, amount, balance.CreditTag(intent.Id)); err != nil {
			c.WithField("err", err).Error("balance.Credit failed")
			return err
		}
		if err := im.receipt.Create(c, r); err != nil {
			c.WithField("err", err).Error("receipt.Create failed")
			return err
		}
		committed := settlement.IntentStateCommitted
		if err := im.intent.Update(c, intent.Id, settlement.IntentPatchable{State: &committed, UpdatedAt: &now}); err != nil {
			c.WithField("err", err).Error("intent.Update failed")
			return err
		}
		evt := event.NewProductPurchased(listingId, l.Owner, l.Name, buyer, receiptId, amount, now)
		if err := im.emitter.Emit(c, evt); err != nil {
			c.WithField("err", err).Error("emitter.Emit failed")
			return err
		}
		return nil
	})
	if err != nil {
		if landed := im.abort(ctx.Detach(c), intent, err); !landed {
			met.BumpSum("purchase.aborted", 1, "kind", string(domain.KindOf(err)))
			return nil, err
		}
		c.WithField("err", err).Warn("unit of work failed after receipt was written")
	} else {
		im.release(c, intent)
	}
	met.BumpSum("purchase.committed", 1)
	c.WithField("amount", amount).Info("purchase committed")

	return &settlement.PurchaseResult{
		ReceiptId:  receiptId,
		ListingId:  listingId,
		PriceUsd:   l.PriceUsd,
		AmountPaid: amount,
		Timestamp:  r.Timestamp,
		Quote:      q,
	}, nil
}

// compensate undoes whatever part of the transfer reached the ledger
func (im *impl) compensate(c ctx.Ctx, intent *settlement.Intent) error {
	if _, err := im.balance.Revert(c, intent.Treasury, intent.Amount, balance.CreditTag(intent.Id), false); err != nil {
		c.WithFields(log.Fields{"err": err, "intentId": intent.Id}).Error("balance.Revert credit failed")
		return err
	}
	if _, err := im.balance.Revert(c, intent.Buyer, intent.Amount, balance.DebitTag(intent.Id), true); err != nil {
		c.WithFields(log.Fields{"err": err, "intentId": intent.Id}).Error("balance.Revert debit failed")
		return err
	}
	return nil
}

// abort settles an intent whose unit of work failed. A receipt written for
// it means the purchase landed: the intent is committed and abort returns true.
// Otherwise the transfer is compensated and the intent aborted. The intent
// stays prepared for recovery when the outcome can not be told yet.
func (im *impl) abort(c ctx.Ctx, intent *settlement.Intent, cause error) bool {
	c = ctx.WithValue(c, "intentId", intent.Id)

	r, err := im.receipt.FindOne(c, intent.ReceiptId)
	if err == nil && r.IntentId == intent.Id {
		if err := im.commit(c, intent); err != nil {
			c.WithField("err", err).Error("commit failed")
		}
		return true
	} else if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("receipt.FindOne failed")
		return false
	}

	// the commit may still become visible
	if errors.Is(cause, domain.ErrCommitUnknown) {
		c.WithField("err", cause).Warn("leave intent to recovery")
		return false
	}

	if err := im.compensate(c, intent); err != nil {
		c.WithField("err", err).Error("compensate failed")
		return false
	}
	now := timeNow()
	aborted := settlement.IntentStateAborted
	reason := cause.Error()
	patch := settlement.IntentPatchable{State: &aborted, Reason: &reason, UpdatedAt: &now}
	if err := im.intent.Update(c, intent.Id, patch); err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("intent.Update failed")
	}
	return false
}

// commit closes an intent whose receipt exists
func (im *impl) commit(c ctx.Ctx, intent *settlement.Intent) error {
	now := timeNow()
	committed := settlement.IntentStateCommitted
	patch := settlement.IntentPatchable{State: &committed, UpdatedAt: &now}
	if err := im.intent.Update(c, intent.Id, patch); err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("intent.Update failed")
		return err
	}
	im.release(c, intent)
	return nil
}

// release forgets the tags of a committed intent, the transfer stays
func (im *impl) release(c ctx.Ctx, intent *settlement.Intent) {
	if err := im.balance.Release(c, intent.Buyer, balance.DebitTag(intent.Id)); err != nil {
		c.WithFields(log.Fields{"err": err, "intentId": intent.Id}).Warn("balance.Release debit failed")
	}
	if err := im.balance.Release(c, intent.Treasury, balance.CreditTag(intent.Id)); err != nil {
		c.WithFields(log.Fields{"err": err, "intentId": intent.Id}).Warn("balance.Release credit failed")
	}
}
