// Package txwatch follows submitted contract transactions until they reach a final status.
package txwatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/consumer"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/metrics"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
)

var log = logrus.WithField("layer", "consumer").WithField("package", "txwatch")

const restoreLimit = 1000

// Lookup resolves counter-parties of confirmed transactions.
type Lookup interface {
	GetPost(ctx context.Context, id uint64) (*entities.Post, error)
	GetGroupDetails(ctx context.Context, id uint64) (*entities.Group, error)
}

// Watcher is a consumer and a tracker of transactions.
type Watcher interface {
	consumer.Consumer
	service.Tracker
}

// Invalidator drops cached state of address.
type Invalidator interface {
	Invalidate(addr common.Address)
}

// Option ...
type Option func(w *watcher)

// WithInvalidator makes watcher drop cached profiles touched by confirmed transactions.
func WithInvalidator(i Invalidator) Option {
	return func(w *watcher) {
		w.i = i
	}
}

type watcher struct {
	b chain.Backend
	s storage.Storage
	l Lookup
	i Invalidator

	pollInterval time.Duration
	timeout      time.Duration

	mu  sync.Mutex
	txs map[common.Hash]*entities.Tx
}

// New creates new instance of watcher.
func New(b chain.Backend, s storage.Storage, l Lookup, pollInterval, timeout time.Duration, opts ...Option) Watcher {
	w := &watcher{
		b:            b,
		s:            s,
		l:            l,
		pollInterval: pollInterval,
		timeout:      timeout,
		txs:          map[common.Hash]*entities.Tx{},
	}

	for _, o := range opts {
		o(w)
	}

	return w
}

// Track saves transaction and starts following it.
// Already known hash is not tracked again, tx is filled with the stored record instead.
func (w *watcher) Track(ctx context.Context, tx *entities.Tx) error {
	tx.Status = entities.TxSubmitted
	tx.Block, tx.Error = 0, ""
	if tx.SubmittedAt.IsZero() {
		tx.SubmittedAt = time.Now().UTC()
	}
	tx.UpdatedAt = tx.SubmittedAt

	created, err := w.s.CreateTx(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to save tx: %w", err)
	}

	if !created {
		stored, err := w.s.GetTx(ctx, tx.Hash)
		if err != nil {
			return fmt.Errorf("failed to get tx: %w", err)
		}
		*tx = *stored

		log.WithField("hash", tx.Hash.Hex()).WithField("status", tx.Status).Debug("transaction is already tracked")
		return nil
	}

	c := *tx
	w.mu.Lock()
	w.txs[tx.Hash] = &c
	w.mu.Unlock()

	return nil
}

// Run restores unresolved transactions and polls their receipts until ctx is done.
func (w *watcher) Run(ctx context.Context) error {
	pending, err := w.s.ListPendingTxs(ctx, restoreLimit)
	if err != nil {
		return fmt.Errorf("failed to restore pending txs: %w", err)
	}

	w.mu.Lock()
	for _, tx := range pending {
		w.txs[tx.Hash] = tx
	}
	w.mu.Unlock()

	log.WithField("count", len(pending)).Info("restored pending transactions")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *watcher) snapshot() []*entities.Tx {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*entities.Tx, 0, len(w.txs))
	for _, tx := range w.txs {
		out = append(out, tx)
	}
	return out
}

func (w *watcher) poll(ctx context.Context) {
	for _, tx := range w.snapshot() {
		if ctx.Err() != nil {
			return
		}

		if err := w.check(ctx, tx); err != nil {
			log.WithField("hash", tx.Hash.Hex()).WithError(err).Error("failed to check transaction")
		}
	}
}

func (w *watcher) check(ctx context.Context, tx *entities.Tx) error {
	r, err := w.b.Receipt(ctx, tx.Hash)

	next := *tx
	next.UpdatedAt = time.Now().UTC()

	switch {
	case err == nil:
		next.Block = r.BlockNumber.Uint64()
		if r.Status == types.ReceiptStatusSuccessful {
			next.Status = entities.TxConfirmed
		} else {
			next.Status = entities.TxReverted
			next.Error = "Transaction reverted"
		}
		if err := w.verify(ctx, &next); err != nil {
			return err
		}
	case errors.Is(err, chain.ErrPending):
		next.Status = entities.TxPending
	case errors.Is(err, chain.ErrUnknownTx):
	default:
		return err
	}

	if !next.Status.Final() && next.UpdatedAt.Sub(tx.SubmittedAt) > w.timeout {
		next.Status = entities.TxFailed
		next.Error = "Transaction was not mined in time"
	}

	if next.Status == tx.Status {
		return nil
	}

	if err := w.resolve(ctx, &next); err != nil {
		return err
	}

	w.mu.Lock()
	if next.Status.Final() {
		delete(w.txs, tx.Hash)
	} else {
		w.txs[tx.Hash] = &next
	}
	w.mu.Unlock()

	if next.Status.Final() {
		metrics.TxOutcome(string(next.Status))
	}
	if next.Status == entities.TxConfirmed {
		w.invalidate(&next)
	}

	log.WithFields(logrus.Fields{
		"hash":   next.Hash.Hex(),
		"method": next.Method,
		"status": next.Status,
	}).Info("transaction status changed")

	return nil
}

// verify replaces submitted sender, method and args with the call decoded from chain.
func (w *watcher) verify(ctx context.Context, tx *entities.Tx) error {
	call, err := w.b.Transaction(ctx, tx.Hash)
	switch {
	case err == nil:
	case errors.Is(err, chain.ErrForeignTx):
		log.WithField("hash", tx.Hash.Hex()).WithError(err).Warn("tracked transaction is not a contract call")
		tx.Status = entities.TxFailed
		tx.Error = "Transaction is not a social contract call"
		return nil
	default:
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	args := make([]string, len(call.Args))
	for i, v := range call.Args {
		args[i] = chain.FormatArg(v)
	}

	if call.From != tx.From || call.Method != tx.Method {
		log.WithFields(logrus.Fields{
			"hash":      tx.Hash.Hex(),
			"submitted": tx.Method,
			"method":    call.Method,
		}).Warn("submitted transaction details don't match chain")
	}

	tx.From, tx.Method, tx.Args = call.From, call.Method, args

	return nil
}

// resolve saves new status, confirmed transactions also produce activity and notification.
func (w *watcher) resolve(ctx context.Context, tx *entities.Tx) error {
	var n *entities.Notification
	if tx.Status == entities.TxConfirmed {
		n = w.notification(ctx, tx)
	}

	return w.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.SaveTx(ctx, tx); err != nil {
			return err
		}

		if tx.Status != entities.TxConfirmed {
			return nil
		}

		if err := s.AddActivity(ctx, &entities.Activity{
			Address:   tx.From,
			Kind:      tx.Method,
			Target:    target(tx),
			TxHash:    tx.Hash,
			CreatedAt: tx.UpdatedAt,
		}); err != nil {
			return err
		}

		if n != nil {
			if err := s.AddNotification(ctx, n); err != nil {
				return err
			}
		}

		return nil
	})
}

// invalidate drops cached profiles whose name or counters were changed by tx.
func (w *watcher) invalidate(tx *entities.Tx) {
	if w.i == nil {
		return
	}

	switch tx.Method {
	case "createProfile", "setProfileName", "deleteProfile", "createPost", "deletePost":
		w.i.Invalidate(tx.From)
	case "followUser", "unfollowUser":
		w.i.Invalidate(tx.From)
		w.i.Invalidate(common.HexToAddress(target(tx)))
	}
}

func target(tx *entities.Tx) string {
	if len(tx.Args) == 0 {
		return ""
	}
	return tx.Args[0]
}

// notification builds notification for the counter-party of transaction, nil if there is none.
func (w *watcher) notification(ctx context.Context, tx *entities.Tx) *entities.Notification {
	l := log.WithField("hash", tx.Hash.Hex()).WithField("method", tx.Method)

	n := entities.Notification{
		Actor:     tx.From,
		RelatedID: target(tx),
		CreatedAt: tx.UpdatedAt,
	}

	switch tx.Method {
	case "followUser":
		n.Kind, n.Title = entities.FollowNotification, "New follower"
		n.Address = common.HexToAddress(target(tx))
		n.Body = fmt.Sprintf("%s started following you", tx.From.Hex())
	case "sendDirectMessage":
		n.Kind, n.Title = entities.MessageNotification, "New message"
		n.Address = common.HexToAddress(target(tx))
		if len(tx.Args) > 1 {
			n.Body = tx.Args[1]
		}
	case "likePost", "addComment":
		id, err := strconv.ParseUint(target(tx), 10, 64)
		if err != nil {
			l.WithError(err).Warn("invalid post id")
			return nil
		}
		p, err := w.l.GetPost(ctx, id)
		if err != nil {
			l.WithError(err).Warn("failed to get post author")
			return nil
		}
		n.Address = p.Author
		if tx.Method == "likePost" {
			n.Kind, n.Title = entities.LikeNotification, "New like"
			n.Body = fmt.Sprintf("%s liked your post", tx.From.Hex())
		} else {
			n.Kind, n.Title = entities.CommentNotification, "New comment"
			if len(tx.Args) > 1 {
				n.Body = tx.Args[1]
			}
		}
	case "joinGroup":
		id, err := strconv.ParseUint(target(tx), 10, 64)
		if err != nil {
			l.WithError(err).Warn("invalid group id")
			return nil
		}
		g, err := w.l.GetGroupDetails(ctx, id)
		if err != nil {
			l.WithError(err).Warn("failed to get group creator")
			return nil
		}
		n.Kind, n.Title = entities.GroupNotification, "New member"
		n.Address = g.Creator
		n.Body = fmt.Sprintf("%s joined %s", tx.From.Hex(), g.Name)
	default:
		return nil
	}

	if n.Address == (common.Address{}) || n.Address == tx.From {
		return nil
	}

	return &n
}

// Ping implements health.Pinger.
func (w *watcher) Ping(context.Context) (interface{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return map[string]int{"tracked": len(w.txs)}, nil
}

// Name implements health.Pinger.
func (w *watcher) Name() string {
	return "txwatch"
}
