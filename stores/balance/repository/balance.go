package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/database/mongoclient"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
	"github.com/x-xyz/listingapi/service/query"
)

// Indexes of the balances collection
var Indexes = []mongoclient.IndexSpec{
	{Collection: string(domain.TableBalances), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) balance.Repo {
	return &impl{q: q}
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*balance.Account, error) {
	res := &balance.Account{}
	if err := im.q.FindOne(c, domain.TableBalances, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) HasTag(c ctx.Ctx, address domain.Address, tag string) (bool, error) {
	n, err := im.q.Count(c, domain.TableBalances, bson.M{"address": address.ToLower(), "pendingTags": tag})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address, "tag": tag}).Error("q.Count failed")
		return false, err
	}
	return n > 0, nil
}

// tagged narrows selector to accounts not yet carrying tag and records tag in update
func tagged(selector, update bson.M, tag string) {
	if tag == "" {
		return
	}
	selector["pendingTags"] = bson.M{"$ne": tag}
	update["$addToSet"] = bson.M{"pendingTags": tag}
}

func (im *impl) Credit(c ctx.Ctx, address domain.Address, amount uint64, tag string) error {
	if amount > balance.MaxAmount {
		return domain.ErrMathOverflow
	}
	addr := address.ToLower()

	selector := bson.M{
		"address": addr,
		"balance": bson.M{"$lte": int64(balance.MaxAmount - amount)},
	}
	update := bson.M{"$inc": bson.M{"balance": int64(amount)}}
	tagged(selector, update, tag)

	err := im.q.CustomPatch(c, domain.TableBalances, selector, update, false)
	if err == nil {
		return nil
	} else if err != query.ErrNotFound {
		c.WithFields(log.Fields{"err": err, "address": addr, "tag": tag}).Error("q.CustomPatch failed")
		return err
	}

	// no account, or one that is full or already tagged. Reads before the
	// insert as a failed write aborts the enclosing transaction.
	account, err := im.FindOne(c, addr)
	if err == domain.ErrNotFound {
		return im.open(c, addr, amount, tag)
	} else if err != nil {
		return err
	}
	if tag != "" && hasTag(account.PendingTags, tag) {
		return nil
	}
	return domain.ErrMathOverflow
}

// open creates the account holding its first credit
func (im *impl) open(c ctx.Ctx, addr domain.Address, amount uint64, tag string) error {
	account := &balance.Account{Address: addr, Balance: amount, PendingTags: []string{}}
	if tag != "" {
		account.PendingTags = append(account.PendingTags, tag)
	}
	if err := im.q.Insert(c, domain.TableBalances, account); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": addr}).Error("q.Insert failed")
		return err
	}
	return nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (im *impl) Debit(c ctx.Ctx, address domain.Address, amount uint64, tag string) error {
	if amount > balance.MaxAmount {
		return domain.ErrMathOverflow
	}
	addr := address.ToLower()

	selector := bson.M{
		"address": addr,
		"balance": bson.M{"$gte": int64(amount)},
	}
	update := bson.M{"$inc": bson.M{"balance": -int64(amount)}}
	tagged(selector, update, tag)

	err := im.q.CustomPatch(c, domain.TableBalances, selector, update, false)
	if err == nil {
		return nil
	} else if err != query.ErrNotFound {
		c.WithFields(log.Fields{"err": err, "address": addr, "tag": tag}).Error("q.CustomPatch failed")
		return err
	}

	if tag != "" {
		if applied, err := im.HasTag(c, addr, tag); err != nil {
			return err
		} else if applied {
			return nil
		}
	}
	return domain.ErrInsufficientFunds
}

func (im *impl) Revert(c ctx.Ctx, address domain.Address, amount uint64, tag string, wasDebit bool) (bool, error) {
	if amount > balance.MaxAmount {
		return false, domain.ErrMathOverflow
	}
	addr := address.ToLower()

	selector := bson.M{"address": addr, "pendingTags": tag}
	delta := int64(amount)
	if !wasDebit {
		selector["balance"] = bson.M{"$gte": int64(amount)}
		delta = -delta
	}
	update := bson.M{
		"$inc":  bson.M{"balance": delta},
		"$pull": bson.M{"pendingTags": tag},
	}

	err := im.q.CustomPatch(c, domain.TableBalances, selector, update, false)
	if err == nil {
		return true, nil
	} else if err != query.ErrNotFound {
		c.WithFields(log.Fields{"err": err, "address": addr, "tag": tag}).Error("q.CustomPatch failed")
		return false, err
	}

	if wasDebit {
		return false, nil
	}
	// a credit whose funds were spent meanwhile can not be taken back
	if applied, err := im.HasTag(c, addr, tag); err != nil {
		return false, err
	} else if applied {
		c.WithFields(log.Fields{"address": addr, "tag": tag, "amount": amount}).Error("credit already spent")
		return false, domain.ErrInsufficientFunds
	}
	return false, nil
}

func (im *impl) Release(c ctx.Ctx, address domain.Address, tag string) error {
	addr := address.ToLower()
	selector := bson.M{"address": addr, "pendingTags": tag}
	update := bson.M{"$pull": bson.M{"pendingTags": tag}}
	if err := im.q.CustomPatch(c, domain.TableBalances, selector, update, false); err == query.ErrNotFound {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": addr, "tag": tag}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
