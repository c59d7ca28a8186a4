package chain

import "fmt"

// WalletError is an EIP-1193 provider error as reported by a browser wallet.
type WalletError struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Reason  string           `json:"reason,omitempty"`
	Data    *WalletErrorData `json:"data,omitempty"`
}

// WalletErrorData ...
type WalletErrorData struct {
	Message string `json:"message"`
}

func (e *WalletError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

// ErrorCode implements rpc.Error.
func (e *WalletError) ErrorCode() int {
	return e.Code
}
