package usecase

import (
	"time"

	"github.com/x-xyz/listingapi/base/backoff"
	bCtx "github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/goroutine"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain/settlement"
)

type SweeperCfg struct {
	Settlement settlement.Usecase
	// Interval between recovery passes
	Interval time.Duration
	// Grace is the minimum age of an intent before it is recovered, longer than
	// any purchase takes to finish
	Grace time.Duration
}

// Sweeper periodically recovers intents of interrupted purchases
type Sweeper struct {
	settlement settlement.Usecase
	interval   time.Duration
	grace      time.Duration
	stoppedCh  chan interface{}
}

const (
	defaultSweepInterval = 30 * time.Second
	defaultSweepGrace    = 2 * defaultLockTtl
)

func NewSweeper(cfg *SweeperCfg) *Sweeper {
	s := &Sweeper{
		settlement: cfg.Settlement,
		interval:   cfg.Interval,
		grace:      cfg.Grace,
		stoppedCh:  make(chan interface{}),
	}
	if s.interval <= 0 {
		s.interval = defaultSweepInterval
	}
	if s.grace <= 0 {
		s.grace = defaultSweepGrace
	}
	return s
}

// Start runs the sweep loop until ctx is done, restarting it after a panic
func (s *Sweeper) Start(ctx bCtx.Ctx) {
	go func() {
		defer close(s.stoppedCh)
		for {
			evt := <-goroutine.RecoverableGo(func() { s.loop(ctx) })
			if evt == nil || ctx.Err() != nil {
				return
			}
			ctx.WithField("panic", evt.Panic).Warn("sweeper restarted")
		}
	}()
}

func (s *Sweeper) Wait() {
	<-s.stoppedCh
}

func (s *Sweeper) loop(ctx bCtx.Ctx) {
	bo := backoff.NewExponential(time.Second, s.interval)
	nextTick := time.Second * 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			n, err := s.settlement.Recover(ctx, timeNow().Add(-s.grace))
			if err != nil {
				ctx.WithFields(log.Fields{"err": err, "attempts": bo.Attempts()}).Error("settlement.Recover failed")
				if err := bo.Backoff(ctx); err != nil {
					return
				}
				nextTick = 0
				continue
			}
			bo.Reset()
			if n > 0 {
				nextTick = 0
			} else {
				nextTick = s.interval
			}
		}
	}
}
