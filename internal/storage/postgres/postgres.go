// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

type pg struct {
	ext sqlx.ExtContext
}

type notificationDTO struct {
	ID        int64     `db:"id"`
	Address   string    `db:"address"`
	Kind      string    `db:"kind"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Actor     string    `db:"actor"`
	RelatedID string    `db:"related_id"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

type activityDTO struct {
	ID        int64     `db:"id"`
	Address   string    `db:"address"`
	Kind      string    `db:"kind"`
	Target    string    `db:"target"`
	TxHash    string    `db:"tx_hash"`
	CreatedAt time.Time `db:"created_at"`
}

type txDTO struct {
	Hash        string         `db:"hash"`
	Method      string         `db:"method"`
	Sender      string         `db:"sender"`
	Args        pq.StringArray `db:"args"`
	Status      string         `db:"status"`
	Block       int64          `db:"block"`
	Error       string         `db:"error"`
	SubmittedAt time.Time      `db:"submitted_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type messageDTO struct {
	Index        int    `json:"index"`
	Sender       string `json:"sender"`
	Timestamp    int64  `json:"timestamp"`
	Content      string `json:"content"`
	IsDeleted    bool   `json:"isDeleted"`
	ReplyToIndex int    `json:"replyToIndex"`
}

type groupMessagesDTO struct {
	GroupID   int64     `db:"group_id"`
	Messages  []byte    `db:"messages"`
	UpdatedAt time.Time `db:"updated_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) AddNotification(ctx context.Context, n *entities.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	dto := notificationDTO{
		Address:   n.Address.Hex(),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Actor:     n.Actor.Hex(),
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC(),
	}

	query, args, err := sqlx.Named(`
			INSERT INTO notification(address, kind, title, body, actor, related_id, read, created_at)
			VALUES(:address, :kind, :title, :body, :actor, :related_id, :read, :created_at)
			RETURNING id
		`, dto)
	if err != nil {
		return fmt.Errorf("failed to bind query: %w", err)
	}

	if err := sqlx.GetContext(ctx, s.ext, &n.ID, s.ext.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListNotifications(ctx context.Context, addr common.Address, limit uint16) ([]*entities.Notification, error) {
	var dto []notificationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, `
			SELECT id, address, kind, title, body, actor, related_id, read, created_at
			FROM notification
			WHERE address = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		`, addr.Hex(), limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(dto))
	for i, v := range dto {
		out[i] = &entities.Notification{
			ID:        v.ID,
			Address:   common.HexToAddress(v.Address),
			Kind:      entities.NotificationKind(v.Kind),
			Title:     v.Title,
			Body:      v.Body,
			Actor:     common.HexToAddress(v.Actor),
			RelatedID: v.RelatedID,
			Read:      v.Read,
			CreatedAt: v.CreatedAt.UTC(),
		}
	}

	return out, nil
}

func (s pg) MarkNotificationsRead(ctx context.Context, addr common.Address, ids ...int64) error {
	if len(ids) == 0 {
		if _, err := s.ext.ExecContext(ctx,
			`UPDATE notification SET read = TRUE WHERE address = $1 AND NOT read`, addr.Hex(),
		); err != nil {
			return fmt.Errorf("failed to exec: %w", err)
		}
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE notification SET read = TRUE WHERE address = $1 AND id = ANY($2)`, addr.Hex(), pq.Int64Array(ids),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CountUnread(ctx context.Context, addr common.Address) (uint32, error) {
	var c uint32
	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT COUNT(*) FROM notification WHERE address = $1 AND NOT read`, addr.Hex(),
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) AddActivity(ctx context.Context, a *entities.Activity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	dto := activityDTO{
		Address:   a.Address.Hex(),
		Kind:      a.Kind,
		Target:    a.Target,
		TxHash:    a.TxHash.Hex(),
		CreatedAt: a.CreatedAt.UTC(),
	}

	query, args, err := sqlx.Named(`
			INSERT INTO activity(address, kind, target, tx_hash, created_at)
			VALUES(:address, :kind, :target, :tx_hash, :created_at)
			RETURNING id
		`, dto)
	if err != nil {
		return fmt.Errorf("failed to bind query: %w", err)
	}

	if err := sqlx.GetContext(ctx, s.ext, &a.ID, s.ext.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListActivity(ctx context.Context, addr common.Address, limit uint16) ([]*entities.Activity, error) {
	var dto []activityDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, `
			SELECT id, address, kind, target, tx_hash, created_at
			FROM activity
			WHERE address = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		`, addr.Hex(), limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Activity, len(dto))
	for i, v := range dto {
		out[i] = &entities.Activity{
			ID:        v.ID,
			Address:   common.HexToAddress(v.Address),
			Kind:      v.Kind,
			Target:    v.Target,
			TxHash:    common.HexToHash(v.TxHash),
			CreatedAt: v.CreatedAt.UTC(),
		}
	}

	return out, nil
}

func (s pg) CacheGroupMessages(ctx context.Context, groupID uint64, msgs []entities.Message) error {
	dto := make([]messageDTO, len(msgs))
	for i, m := range msgs {
		dto[i] = messageDTO{
			Index:        m.Index,
			Sender:       m.Sender.Hex(),
			Timestamp:    m.Timestamp.Unix(),
			Content:      m.Content,
			IsDeleted:    m.IsDeleted,
			ReplyToIndex: m.ReplyToIndex,
		}
	}

	b, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO group_message_cache(group_id, messages, updated_at) VALUES($1, $2, $3)
			ON CONFLICT(group_id) DO UPDATE SET messages=excluded.messages, updated_at=excluded.updated_at
		`, int64(groupID), b, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetCachedGroupMessages(ctx context.Context, groupID uint64) (*storage.CachedMessages, error) {
	var dto groupMessagesDTO

	if err := sqlx.GetContext(ctx, s.ext, &dto,
		`SELECT group_id, messages, updated_at FROM group_message_cache WHERE group_id = $1`, int64(groupID),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	var msgs []messageDTO
	if err := json.Unmarshal(dto.Messages, &msgs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	out := storage.CachedMessages{
		GroupID:   groupID,
		Messages:  make([]entities.Message, len(msgs)),
		UpdatedAt: dto.UpdatedAt.UTC(),
	}
	for i, m := range msgs {
		out.Messages[i] = entities.Message{
			Index:        m.Index,
			Sender:       common.HexToAddress(m.Sender),
			Timestamp:    time.Unix(m.Timestamp, 0).UTC(),
			Content:      m.Content,
			IsDeleted:    m.IsDeleted,
			ReplyToIndex: m.ReplyToIndex,
		}
	}

	return &out, nil
}

func newTxDTO(tx *entities.Tx) txDTO {
	dto := txDTO{
		Hash:        tx.Hash.Hex(),
		Method:      tx.Method,
		Sender:      tx.From.Hex(),
		Args:        pq.StringArray(tx.Args),
		Status:      string(tx.Status),
		Block:       int64(tx.Block),
		Error:       tx.Error,
		SubmittedAt: tx.SubmittedAt.UTC(),
		UpdatedAt:   tx.UpdatedAt.UTC(),
	}
	if dto.Args == nil {
		dto.Args = pq.StringArray{}
	}
	return dto
}

func (s pg) CreateTx(ctx context.Context, tx *entities.Tx) (bool, error) {
	res, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO tx(hash, method, sender, args, status, block, error, submitted_at, updated_at)
			VALUES(:hash, :method, :sender, :args, :status, :block, :error, :submitted_at, :updated_at)
			ON CONFLICT(hash) DO NOTHING
		`, newTxDTO(tx),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return n == 1, nil
}

func (s pg) SaveTx(ctx context.Context, tx *entities.Tx) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO tx(hash, method, sender, args, status, block, error, submitted_at, updated_at)
			VALUES(:hash, :method, :sender, :args, :status, :block, :error, :submitted_at, :updated_at)
			ON CONFLICT(hash) DO UPDATE SET
			method=excluded.method, sender=excluded.sender, args=excluded.args,
			status=excluded.status, block=excluded.block, error=excluded.error, updated_at=excluded.updated_at
		`, newTxDTO(tx),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetTx(ctx context.Context, hash common.Hash) (*entities.Tx, error) {
	var dto txDTO

	if err := sqlx.GetContext(ctx, s.ext, &dto, `
			SELECT hash, method, sender, args, status, block, error, submitted_at, updated_at
			FROM tx WHERE hash = $1
		`, hash.Hex(),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toTx(dto), nil
}

func (s pg) ListPendingTxs(ctx context.Context, limit uint16) ([]*entities.Tx, error) {
	var dto []txDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, `
			SELECT hash, method, sender, args, status, block, error, submitted_at, updated_at
			FROM tx
			WHERE status IN ($1, $2)
			ORDER BY submitted_at
			LIMIT $3
		`, entities.TxSubmitted, entities.TxPending, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Tx, len(dto))
	for i, v := range dto {
		out[i] = toTx(v)
	}

	return out, nil
}

func toTx(v txDTO) *entities.Tx {
	return &entities.Tx{
		Hash:        common.HexToHash(v.Hash),
		Method:      v.Method,
		From:        common.HexToAddress(v.Sender),
		Args:        []string(v.Args),
		Status:      entities.TxStatus(v.Status),
		Block:       uint64(v.Block),
		Error:       v.Error,
		SubmittedAt: v.SubmittedAt.UTC(),
		UpdatedAt:   v.UpdatedAt.UTC(),
	}
}
