package domain

import (
	"errors"

	"github.com/x-xyz/listingapi/base/ctx"
)

// ErrCommitUnknown is returned when a unit of work may or may not have persisted
var ErrCommitUnknown = errors.New("transaction commit result unknown")

// Transactor runs fn as one unit of work: either every write made through
// the ctx handed to fn persists or none does.
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}
