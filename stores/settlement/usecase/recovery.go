package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/settlement"
)

const reasonRecovered = "recovered without receipt"

// Recover resolves prepared intents left behind by interrupted purchases.
// An intent whose receipt exists is committed, any other is compensated and aborted.
// Intents that keep failing are parked as stuck.
func (im *impl) Recover(c ctx.Ctx, olderThan time.Time) (int, error) {
	intents, err := im.intent.FindPrepared(c, olderThan, recoverBatchMax)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "olderThan": olderThan}).Error("intent.FindPrepared failed")
		return 0, err
	}
	if len(intents) == 0 {
		return 0, nil
	}

	b := goroutines.NewBatch(im.nWorkers, goroutines.WithBatchSize(len(intents)))
	defer b.Close()
	for i := 0; i < len(intents); i++ {
		intent := intents[i]
		b.Queue(func() (interface{}, error) {
			return intent.Id, im.resolve(c, intent)
		})
	}
	b.QueueComplete()

	resolved := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithFields(log.Fields{"err": ret.Error(), "intentId": ret.Value()}).Error("resolve failed")
			continue
		}
		resolved++
	}
	met.BumpSum("recovery.resolved", float64(resolved))
	c.WithFields(log.Fields{"found": len(intents), "resolved": resolved}).Info("recovered intents")
	return resolved, nil
}

func (im *impl) resolve(c ctx.Ctx, intent *settlement.Intent) error {
	c = ctx.WithValue(c, "intentId", intent.Id)
	if err := im.tryResolve(c, intent); err != nil {
		im.fail(c, intent, err)
		return err
	}
	return nil
}

func (im *impl) tryResolve(c ctx.Ctx, intent *settlement.Intent) error {
	r, err := im.receipt.FindOne(c, intent.ReceiptId)
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("receipt.FindOne failed")
		return err
	}

	if err == nil && r.IntentId == intent.Id {
		if err := im.commit(c, intent); err != nil {
			return err
		}
		c.Info("intent committed")
		return nil
	}

	if err := im.compensate(c, intent); err != nil {
		return err
	}
	now := timeNow()
	aborted := settlement.IntentStateAborted
	reason := reasonRecovered
	patch := settlement.IntentPatchable{State: &aborted, Reason: &reason, UpdatedAt: &now}
	if err := im.intent.Update(c, intent.Id, patch); err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("intent.Update failed")
		return err
	}
	c.Info("intent aborted")
	return nil
}

// fail counts a failed resolution, an intent failing too often turns stuck
// and leaves the prepared set so it no longer holds back newer ones
func (im *impl) fail(c ctx.Ctx, intent *settlement.Intent, cause error) {
	now := timeNow()
	attempts := intent.Attempts + 1
	reason := cause.Error()
	patch := settlement.IntentPatchable{Attempts: &attempts, Reason: &reason, UpdatedAt: &now}
	if attempts >= recoverAttemptsMax {
		stuck := settlement.IntentStateStuck
		patch.State = &stuck
	}
	if err := im.intent.Update(c, intent.Id, patch); err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("intent.Update failed")
		return
	}
	if patch.State != nil {
		met.BumpSum("recovery.stuck", 1)
		c.WithFields(log.Fields{"attempts": attempts, "reason": reason}).Error("intent stuck")
	}
}
