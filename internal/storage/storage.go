// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	AddNotification(ctx context.Context, n *entities.Notification) error
	ListNotifications(ctx context.Context, addr common.Address, limit uint16) ([]*entities.Notification, error)
	// MarkNotificationsRead marks listed notifications as read, all of them when ids are empty.
	MarkNotificationsRead(ctx context.Context, addr common.Address, ids ...int64) error
	CountUnread(ctx context.Context, addr common.Address) (uint32, error)

	AddActivity(ctx context.Context, a *entities.Activity) error
	ListActivity(ctx context.Context, addr common.Address, limit uint16) ([]*entities.Activity, error)

	CacheGroupMessages(ctx context.Context, groupID uint64, msgs []entities.Message) error
	GetCachedGroupMessages(ctx context.Context, groupID uint64) (*CachedMessages, error)

	// CreateTx inserts new tx, it returns false and keeps stored record when hash is already known.
	CreateTx(ctx context.Context, tx *entities.Tx) (bool, error)
	SaveTx(ctx context.Context, tx *entities.Tx) error
	GetTx(ctx context.Context, hash common.Hash) (*entities.Tx, error)
	ListPendingTxs(ctx context.Context, limit uint16) ([]*entities.Tx, error)
}

// CachedMessages is a last known snapshot of group messages.
type CachedMessages struct {
	GroupID   uint64
	Messages  []entities.Message
	UpdatedAt time.Time
}
