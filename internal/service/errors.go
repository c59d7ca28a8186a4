package service

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
)

// ErrorKind classifies failed contract interaction.
type ErrorKind string

const (
	// UserRejected means signer refused to sign.
	UserRejected ErrorKind = "user_rejected"
	// InsufficientFunds ...
	InsufficientFunds ErrorKind = "insufficient_funds"
	// Reverted means contract rejected the call, Message holds the reason.
	Reverted ErrorKind = "reverted"
	// Network ...
	Network ErrorKind = "network"
	// ReadOnly means gateway has no signer.
	ReadOnly ErrorKind = "read_only"
	// Unknown ...
	Unknown ErrorKind = "unknown"
)

// userRejectedCode is the EIP-1193 code for a rejected request.
const userRejectedCode = 4001

const (
	msgUserRejected      = "Transaction rejected by user"
	msgInsufficientFunds = "Insufficient funds for transaction"
	msgReverted          = "Transaction reverted"
	msgNetwork           = "Network error, please try again"
	msgReadOnly          = "Gateway is not configured to sign transactions"
)

var revertedRe = regexp.MustCompile(`execution reverted(?::\s*(.+))?`)

// TxError is a classified contract error. Message is safe to show to a user.
type TxError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *TxError) Error() string {
	return e.Message
}

func (e *TxError) Unwrap() error {
	return e.Err
}

// ParseError classifies error returned by a wallet or node.
func ParseError(err error) *TxError {
	if err == nil {
		return nil
	}

	var txErr *TxError
	if errors.As(err, &txErr) {
		return txErr
	}

	out := TxError{Kind: Unknown, Message: err.Error(), Err: err}

	var coder rpc.Error
	if errors.As(err, &coder) && coder.ErrorCode() == userRejectedCode {
		out.Kind, out.Message = UserRejected, msgUserRejected
		return &out
	}

	var walletErr *chain.WalletError
	if errors.As(err, &walletErr) {
		if walletErr.Reason != "" {
			out.Kind, out.Message = Reverted, walletErr.Reason
			return &out
		}
		if walletErr.Data != nil && walletErr.Data.Message != "" {
			return classifyMessage(&out, walletErr.Data.Message)
		}
		return classifyMessage(&out, walletErr.Message)
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := revertReason(dataErr.ErrorData()); ok {
			out.Kind, out.Message = Reverted, reason
			return &out
		}
	}

	switch {
	case errors.Is(err, chain.ErrReadOnly):
		out.Kind, out.Message = ReadOnly, msgReadOnly
		return &out
	case errors.Is(err, context.DeadlineExceeded), isNetError(err):
		out.Kind, out.Message = Network, msgNetwork
		return &out
	}

	return classifyMessage(&out, err.Error())
}

func classifyMessage(out *TxError, msg string) *TxError {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "user rejected"), strings.Contains(lower, "user denied"):
		out.Kind, out.Message = UserRejected, msgUserRejected
	case strings.Contains(lower, "insufficient funds"):
		out.Kind, out.Message = InsufficientFunds, msgInsufficientFunds
	case revertedRe.MatchString(msg):
		out.Kind, out.Message = Reverted, msgReverted
		if m := revertedRe.FindStringSubmatch(msg); len(m) > 1 && m[1] != "" {
			out.Message = strings.TrimSpace(m[1])
		}
	case strings.Contains(lower, "connection refused"), strings.Contains(lower, "no such host"):
		out.Kind, out.Message = Network, msgNetwork
	default:
		out.Message = msg
	}

	return out
}

func revertReason(data interface{}) (string, bool) {
	s, ok := data.(string)
	if !ok {
		return "", false
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return "", false
	}

	reason, err := abi.UnpackRevert(b)
	if err != nil {
		return "", false
	}

	return reason, true
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
