// Package ethereum is implementation of chain backend over go-ethereum.
package ethereum

import (
	"bytes"
	"context"
	_ "embed" // abi
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/metrics"
)

//go:embed social.abi.json
var socialABI []byte

var log = logrus.WithField("layer", "chain").WithField("package", "ethereum")

// Options ...
type Options struct {
	RPC        string
	Contract   common.Address
	ChainID    int64
	PrivateKey string
	Timeout    time.Duration
}

// Backend is go-ethereum implementation of chain.Backend.
type Backend struct {
	client   *ethclient.Client
	abi      abi.ABI
	address  common.Address
	contract *bind.BoundContract
	signer   *bind.TransactOpts
	timeout  time.Duration
}

// ParseABI returns parsed contract abi.
func ParseABI() (abi.ABI, error) {
	return abi.JSON(bytes.NewReader(socialABI))
}

// New dials node and binds social contract. Backend is read-only if private key is empty.
func New(ctx context.Context, o Options) (*Backend, error) {
	parsed, err := ParseABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}

	client, err := ethclient.DialContext(ctx, o.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", o.RPC, err)
	}

	b := &Backend{
		client:   client,
		abi:      parsed,
		address:  o.Contract,
		contract: bind.NewBoundContract(o.Contract, parsed, client, client, client),
		timeout:  o.Timeout,
	}

	if o.PrivateKey == "" {
		log.Info("no private key, backend is read-only")
		return b, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(o.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	chainID := big.NewInt(o.ChainID)
	if o.ChainID == 0 {
		if chainID, err = client.ChainID(ctx); err != nil {
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
	}

	if b.signer, err = bind.NewKeyedTransactorWithChainID(key, chainID); err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	log.WithField("from", b.signer.From.Hex()).Info("transactions will be signed")

	return b, nil
}

// Close closes rpc connection.
func (b *Backend) Close() {
	b.client.Close()
}

func (b *Backend) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

// Call ...
func (b *Backend) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	var out []interface{}
	err := b.contract.Call(&bind.CallOpts{Context: ctx, From: b.From()}, &out, method, args...)
	metrics.ContractCall(method, "call", err)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return out, nil
}

// Transact ...
func (b *Backend) Transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (common.Hash, error) {
	if b.signer == nil {
		return common.Hash{}, chain.ErrReadOnly
	}

	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	opts := *b.signer
	opts.Context = ctx
	opts.Value = value

	tx, err := b.contract.Transact(&opts, method, args...)
	metrics.ContractCall(method, "transact", err)
	if err != nil {
		return common.Hash{}, err
	}

	log.WithField("method", method).WithField("hash", tx.Hash().Hex()).Debug("transaction sent")

	return tx.Hash(), nil
}

// Receipt ...
func (b *Backend) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	r, err := b.client.TransactionReceipt(ctx, hash)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, goethereum.NotFound) {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if _, _, err := b.client.TransactionByHash(ctx, hash); err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, chain.ErrUnknownTx
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return nil, chain.ErrPending
}

// Transaction ...
func (b *Backend) Transaction(ctx context.Context, hash common.Hash) (*chain.CallData, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	tx, _, err := b.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, chain.ErrUnknownTx
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return decodeCall(b.abi, b.address, tx)
}

// decodeCall recovers sender of tx and unpacks social contract call from its data.
func decodeCall(parsed abi.ABI, contract common.Address, tx *types.Transaction) (*chain.CallData, error) {
	if tx.To() == nil || *tx.To() != contract {
		return nil, fmt.Errorf("%w: wrong recipient", chain.ErrForeignTx)
	}

	data := tx.Data()
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: no method selector", chain.ErrForeignTx)
	}

	m, err := parsed.MethodById(data[:4])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", chain.ErrForeignTx, err)
	}

	args, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unpack %s: %s", chain.ErrForeignTx, m.RawName, err)
	}

	var signer types.Signer = types.HomesteadSigner{}
	if tx.Protected() {
		signer = types.LatestSignerForChainID(tx.ChainId())
	}

	from, err := types.Sender(signer, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover sender: %w", err)
	}

	return &chain.CallData{
		From:   from,
		Method: m.RawName,
		Args:   args,
	}, nil
}

// BlockNumber ...
func (b *Backend) BlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	n, err := b.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get block number: %w", err)
	}

	return n, nil
}

// From ...
func (b *Backend) From() common.Address {
	if b.signer == nil {
		return common.Address{}
	}
	return b.signer.From
}

// Ping implements health.Pinger.
func (b *Backend) Ping(ctx context.Context) (interface{}, error) {
	n, err := b.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]uint64{"block": n}, nil
}

// Name implements health.Pinger.
func (b *Backend) Name() string {
	return "ethereum"
}
