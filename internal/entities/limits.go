package entities

import "math/big"

// Limits enforced before anything is sent to the contract.
const (
	MinUsernameLength       = 3
	MaxUsernameLength       = 50
	MaxPostDescription      = 1000
	MaxCommentLength        = 500
	MaxGroupNameLength      = 50
	MaxGroupDescription     = 500
	MaxMessageLength        = 1000
	MaxFileUploadSize       = 100 << 20
	MaxJSONUploadSize       = 10 << 20
	DefaultPageSize         = 20
	MaxPageSize             = 100
	DefaultIPFSGateway      = "https://gateway.pinata.cloud/ipfs/"
	DefaultLiveChatCapacity = 100
)

// DefaultPostFee is 0.0001 ether.
func DefaultPostFee() *big.Int {
	return big.NewInt(100_000_000_000_000)
}

// DefaultGroupFee is 0.001 ether.
func DefaultGroupFee() *big.Int {
	return big.NewInt(1_000_000_000_000_000)
}
