package ethereum

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
)

var (
	contract = common.HexToAddress("0xc0c0000000000000000000000000000000000001")
	bob      = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
)

func signed(t *testing.T, to *common.Address, data []byte) (*types.Transaction, common.Address) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    1,
		To:       to,
		Gas:      100000,
		GasPrice: big.NewInt(1),
		Data:     data,
	}), types.LatestSignerForChainID(big.NewInt(1337)), key)
	require.NoError(t, err)

	return tx, crypto.PubkeyToAddress(key.PublicKey)
}

func TestDecodeCall(t *testing.T) {
	parsed, err := ParseABI()
	require.NoError(t, err)

	data, err := parsed.Pack("followUser", bob)
	require.NoError(t, err)

	tx, from := signed(t, &contract, data)

	call, err := decodeCall(parsed, contract, tx)
	require.NoError(t, err)
	assert.Equal(t, from, call.From)
	assert.Equal(t, "followUser", call.Method)
	require.Len(t, call.Args, 1)
	assert.Equal(t, bob, call.Args[0])
	assert.Equal(t, bob.Hex(), chain.FormatArg(call.Args[0]))
}

func TestDecodeCall_Comment(t *testing.T) {
	parsed, err := ParseABI()
	require.NoError(t, err)

	data, err := parsed.Pack("addComment", big.NewInt(7), "nice", true, big.NewInt(2))
	require.NoError(t, err)

	tx, _ := signed(t, &contract, data)

	call, err := decodeCall(parsed, contract, tx)
	require.NoError(t, err)
	assert.Equal(t, "addComment", call.Method)

	args := make([]string, len(call.Args))
	for i, v := range call.Args {
		args[i] = chain.FormatArg(v)
	}
	assert.Equal(t, []string{"7", "nice", "true", "2"}, args)
}

func TestDecodeCall_Foreign(t *testing.T) {
	parsed, err := ParseABI()
	require.NoError(t, err)

	data, err := parsed.Pack("followUser", bob)
	require.NoError(t, err)

	other := common.HexToAddress("0x0000000000000000000000000000000000000bad")

	tt := []struct {
		name string
		to   *common.Address
		data []byte
	}{
		{name: "other_contract", to: &other, data: data},
		{name: "deployment", to: nil, data: data},
		{name: "plain_transfer", to: &contract, data: nil},
		{name: "unknown_selector", to: &contract, data: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "truncated_args", to: &contract, data: data[:10]},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			tx, _ := signed(t, tc.to, tc.data)

			_, err := decodeCall(parsed, contract, tx)
			require.ErrorIs(t, err, chain.ErrForeignTx)
		})
	}
}
