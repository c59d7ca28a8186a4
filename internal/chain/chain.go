// Package chain contains the contract binding interface and the decoding of values it returns.
package chain

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -destination=./mock/chain.go -package=mock -source=chain.go

var (
	// ErrPending is returned by Receipt when transaction is not mined yet.
	ErrPending = errors.New("transaction is pending")
	// ErrUnknownTx is returned by Receipt when node doesn't know the transaction.
	ErrUnknownTx = errors.New("unknown transaction")
	// ErrReadOnly is returned by Transact when backend has no signer.
	ErrReadOnly = errors.New("backend is read-only")
	// ErrForeignTx is returned by Transaction when transaction doesn't call the social contract.
	ErrForeignTx = errors.New("transaction is not a social contract call")
)

// CallData is a contract call decoded from a sent transaction.
type CallData struct {
	From   common.Address
	Method string
	Args   []interface{}
}

// Backend is a social contract binding.
type Backend interface {
	// Call invokes constant method and returns its raw outputs.
	Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error)
	// Transact signs and sends transaction, value may be nil.
	Transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (common.Hash, error)
	// Receipt returns receipt of mined transaction, ErrPending or ErrUnknownTx otherwise.
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	// Transaction returns contract call sent by transaction, ErrForeignTx if it calls something else.
	Transaction(ctx context.Context, hash common.Hash) (*CallData, error)
	// BlockNumber returns the latest block number.
	BlockNumber(ctx context.Context) (uint64, error)
	// From returns address used to sign transactions and as msg.sender for calls.
	From() common.Address
}
