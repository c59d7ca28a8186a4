// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// groupFetchConcurrency limits parallel getGroupDetails calls in GetAllGroups.
const groupFetchConcurrency = 8

// Fees are values attached to payable methods.
type Fees struct {
	Post  *big.Int
	Group *big.Int
}

// DefaultFees ...
func DefaultFees() Fees {
	return Fees{
		Post:  entities.DefaultPostFee(),
		Group: entities.DefaultGroupFee(),
	}
}

type srv struct {
	b    chain.Backend
	t    service.Tracker
	fees Fees
}

// New creates new instance of service. Tracker may be nil.
func New(b chain.Backend, t service.Tracker, fees Fees) service.Service {
	return srv{
		b:    b,
		t:    t,
		fees: fees,
	}
}

func u256(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

func (s srv) call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	out, err := s.b.Call(ctx, method, args...)
	if err != nil {
		log.WithField("method", method).WithError(err).Debug("call failed")
		return nil, err
	}

	return chain.Unwrap(out), nil
}

// single reads revert when the record doesn't exist.
func notFoundOr(what string, err error) error {
	if service.ParseError(err).Kind == service.Reverted {
		return fmt.Errorf("%s: %w", what, service.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func validatePage(limit uint64) error {
	if limit == 0 || limit > entities.MaxPageSize {
		return fmt.Errorf("%w: limit must be between 1 and %d", service.ErrInvalidArgument, entities.MaxPageSize)
	}
	return nil
}

func (s srv) GetProfile(ctx context.Context, addr common.Address) (*entities.Profile, error) {
	raw, err := s.call(ctx, "profiles", addr)
	if err != nil {
		return nil, notFoundOr("profile", err)
	}

	p, err := chain.DecodeProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	if !p.Exists || p.Name == "" {
		return nil, fmt.Errorf("profile %s: %w", addr.Hex(), service.ErrNotFound)
	}

	return p, nil
}

func (s srv) GetAllUsers(ctx context.Context, offset, limit uint64) (*entities.Page[entities.Profile], error) {
	if err := validatePage(limit); err != nil {
		return nil, err
	}

	raw, err := s.call(ctx, "getAllUsers", u256(offset), u256(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	items, total, err := chain.DecodeList(raw, "users")
	if err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	out := entities.Page[entities.Profile]{Items: make([]entities.Profile, 0, len(items)), Total: total}
	for _, v := range items {
		p, err := chain.DecodeProfile(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		if !p.Exists || p.Name == "" {
			continue
		}
		out.Items = append(out.Items, *p)
	}

	return &out, nil
}

func (s srv) CheckIsFollowing(ctx context.Context, follower, followee common.Address) (bool, error) {
	return s.callBool(ctx, "checkIsFollowing", follower, followee)
}

func (s srv) GetFollowers(ctx context.Context, addr common.Address) ([]common.Address, error) {
	return s.callAddresses(ctx, "getUserFollowers", addr)
}

func (s srv) GetFollowing(ctx context.Context, addr common.Address) ([]common.Address, error) {
	return s.callAddresses(ctx, "getUserFollowing", addr)
}

func (s srv) GetAllPosts(ctx context.Context, offset, limit uint64) (*entities.Page[entities.Post], error) {
	if err := validatePage(limit); err != nil {
		return nil, err
	}

	raw, err := s.call(ctx, "getAllPosts", u256(offset), u256(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	items, total, err := chain.DecodeList(raw, "posts")
	if err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	posts, err := visiblePosts(items)
	if err != nil {
		return nil, err
	}

	return &entities.Page[entities.Post]{Items: posts, Total: total}, nil
}

func (s srv) GetUserPosts(ctx context.Context, addr common.Address) ([]entities.Post, error) {
	raw, err := s.call(ctx, "getUserPosts", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to get user posts: %w", err)
	}

	items, _, err := chain.DecodeList(raw, "posts")
	if err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return visiblePosts(items)
}

func visiblePosts(items []interface{}) ([]entities.Post, error) {
	out := make([]entities.Post, 0, len(items))
	for _, v := range items {
		p, err := chain.DecodePost(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		if !p.Visible() {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s srv) GetPost(ctx context.Context, id uint64) (*entities.Post, error) {
	raw, err := s.call(ctx, "getPost", u256(id))
	if err != nil {
		return nil, notFoundOr("post", err)
	}

	p, err := chain.DecodePost(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}

	if !p.Visible() {
		return nil, fmt.Errorf("post %d: %w", id, service.ErrNotFound)
	}

	return p, nil
}

func (s srv) CheckIfLiked(ctx context.Context, postID uint64, addr common.Address) (bool, error) {
	return s.callBool(ctx, "checkIfLiked", u256(postID), addr)
}

func (s srv) GetPostComments(ctx context.Context, postID uint64) ([]entities.Comment, error) {
	raw, err := s.call(ctx, "getPostComments", u256(postID))
	if err != nil {
		return nil, notFoundOr("comments", err)
	}

	items, err := chain.List(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}

	out := make([]entities.Comment, 0, len(items))
	for i, v := range items {
		c, err := chain.DecodeComment(v, i)
		if err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		if c.Author == (common.Address{}) || c.Text == "" {
			continue
		}
		out = append(out, *c)
	}

	return out, nil
}

func (s srv) GetGroupDetails(ctx context.Context, id uint64) (*entities.Group, error) {
	raw, err := s.call(ctx, "getGroupDetails", u256(id))
	if err != nil {
		return nil, notFoundOr("group", err)
	}

	g, err := chain.DecodeGroup(raw, id)
	if err != nil {
		return nil, fmt.Errorf("failed to decode group: %w", err)
	}

	if g.Creator == (common.Address{}) || g.Name == "" {
		return nil, fmt.Errorf("group %d: %w", id, service.ErrNotFound)
	}

	return g, nil
}

func (s srv) GetAllGroupIDs(ctx context.Context) ([]uint64, error) {
	raw, err := s.call(ctx, "getAllGroupIds")
	if err != nil {
		return nil, fmt.Errorf("failed to get group ids: %w", err)
	}

	items, err := chain.List(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode group ids: %w", err)
	}

	out := make([]uint64, len(items))
	for i, v := range items {
		if out[i], err = chain.Uint64(v); err != nil {
			return nil, fmt.Errorf("failed to decode group id: %w", err)
		}
	}

	return out, nil
}

func (s srv) GetAllGroups(ctx context.Context) ([]entities.Group, error) {
	ids, err := s.GetAllGroupIDs(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]*entities.Group, len(ids))

	gr, gctx := errgroup.WithContext(ctx)
	gr.SetLimit(groupFetchConcurrency)
	for i := range ids {
		i := i
		gr.Go(func() error {
			g, err := s.GetGroupDetails(gctx, ids[i])
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					return nil
				}
				return err
			}
			groups[i] = g
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	out := make([]entities.Group, 0, len(groups))
	for _, g := range groups {
		if g != nil {
			out = append(out, *g)
		}
	}

	return out, nil
}

func (s srv) GetDirectMessages(ctx context.Context, a, b common.Address) ([]entities.Message, error) {
	raw, err := s.call(ctx, "getDirectMessages", a, b)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct messages: %w", err)
	}

	return decodeMessages(raw)
}

func (s srv) GetGroupMessages(ctx context.Context, groupID uint64) ([]entities.Message, error) {
	raw, err := s.call(ctx, "getGroupMessages", u256(groupID))
	if err != nil {
		return nil, notFoundOr("group messages", err)
	}

	return decodeMessages(raw)
}

func decodeMessages(raw interface{}) ([]entities.Message, error) {
	items, err := chain.List(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	all := make([]entities.Message, 0, len(items))
	for i, v := range items {
		m, err := chain.DecodeMessage(v, i)
		if err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		all = append(all, *m)
	}

	return VisibleMessages(all), nil
}

// VisibleMessages drops deleted messages unless a visible message replies to them,
// such messages are kept with cleared content.
func VisibleMessages(all []entities.Message) []entities.Message {
	referenced := make(map[int]struct{})
	for _, m := range all {
		if !m.IsDeleted && m.ReplyToIndex != entities.NoReply {
			referenced[m.ReplyToIndex] = struct{}{}
		}
	}

	out := make([]entities.Message, 0, len(all))
	for _, m := range all {
		if m.IsDeleted {
			if _, ok := referenced[m.Index]; !ok {
				continue
			}
			m.Content = ""
		}
		out = append(out, m)
	}

	return out
}

func (s srv) GetAdminStatus(ctx context.Context, addr common.Address) (*service.AdminStatus, error) {
	var out service.AdminStatus

	raw, err := s.call(ctx, "owner")
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if out.Owner, err = chain.Address(raw); err != nil {
		return nil, fmt.Errorf("failed to decode owner: %w", err)
	}

	if addr != (common.Address{}) {
		if out.IsAdmin, err = s.callBool(ctx, "checkIsAdmin", addr); err != nil {
			return nil, err
		}
	}

	if out.Paused, err = s.callBool(ctx, "paused"); err != nil {
		return nil, err
	}

	raw, err = s.call(ctx, "getContractBalance")
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	balance, ok := raw.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: balance is %T", chain.ErrUnexpectedShape, raw)
	}
	out.Balance = balance

	return &out, nil
}

func (s srv) callBool(ctx context.Context, method string, args ...interface{}) (bool, error) {
	raw, err := s.call(ctx, method, args...)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", method, err)
	}

	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s returned %T", chain.ErrUnexpectedShape, method, raw)
	}

	return v, nil
}

func (s srv) callAddresses(ctx context.Context, method string, args ...interface{}) ([]common.Address, error) {
	raw, err := s.call(ctx, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	items, err := chain.List(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", method, err)
	}

	out := make([]common.Address, 0, len(items))
	for _, v := range items {
		a, err := chain.Address(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", method, err)
		}
		if a != (common.Address{}) {
			out = append(out, a)
		}
	}

	return out, nil
}

// execute sends transaction and hands it over to tracker.
func (s srv) execute(ctx context.Context, value *big.Int, method string, args ...interface{}) (*entities.Tx, error) {
	l := log.WithField("method", method)

	hash, err := s.b.Transact(ctx, value, method, args...)
	if err != nil {
		txErr := service.ParseError(err)
		l.WithError(err).WithField("kind", txErr.Kind).Warn("failed to send transaction")
		return nil, txErr
	}

	now := time.Now().UTC()
	tx := entities.Tx{
		Hash:        hash,
		Method:      method,
		From:        s.b.From(),
		Args:        make([]string, len(args)),
		Status:      entities.TxSubmitted,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	for i, v := range args {
		tx.Args[i] = chain.FormatArg(v)
	}

	if s.t != nil {
		if err := s.t.Track(ctx, &tx); err != nil {
			l.WithError(err).WithField("hash", hash.Hex()).Error("failed to track transaction")
		}
	}

	l.WithField("hash", hash.Hex()).Info("transaction submitted")

	return &tx, nil
}
