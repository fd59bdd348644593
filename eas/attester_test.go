package eas

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	ethMocks "github.com/dan13ram/scout-mint-validator/eth/client/mocks"
	"github.com/dan13ram/scout-mint-validator/models"
	walletMocks "github.com/dan13ram/scout-mint-validator/wallet/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

var testNow = time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)

var testConfig = models.AttestationConfig{
	Enabled:    true,
	EASAddress: "0x4200000000000000000000000000000000000021",
	SchemaID:   "0x1111111111111111111111111111111111111111111111111111111111111111",
	BatchSize:  20,
}

func newTestAttester(t *testing.T) (*EASAttester, *walletMocks.MockSender, *ethMocks.MockEthereumClient) {
	sender := walletMocks.NewMockSender(t)
	client := ethMocks.NewMockEthereumClient(t)

	a, err := NewEASAttester(sender, client, testConfig)
	assert.Nil(t, err)
	a.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	return a, sender, client
}

func purchaseEvent() models.NFTPurchaseEvent {
	return models.NFTPurchaseEvent{
		PendingTransactionID:   "pt-1",
		ScoutID:                "scout-1",
		WalletAddress:          "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		BuilderID:              "builder-1",
		TokenID:                7,
		TokensPurchased:        1,
		PaidAmount:             "2000000",
		PointsValue:            200,
		SourceChainTxHash:      "0xTX1",
		DestinationChainTxHash: "0xTX2",
	}
}

func attestedLog(t *testing.T, address common.Address, uid [32]byte) *types.Log {
	event := easABI.Events["Attested"]
	data, err := event.Inputs.NonIndexed().Pack(uid)
	assert.Nil(t, err)

	return &types.Log{
		Address: address,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(common.HexToAddress(purchaseEvent().WalletAddress).Bytes()),
			common.Hash{},
			common.HexToHash(testConfig.SchemaID),
		},
		Data: data,
	}
}

func TestSend(t *testing.T) {

	t.Run("Sends Attest Call", func(t *testing.T) {
		a, sender, _ := newTestAttester(t)
		event := purchaseEvent()

		credential, err := EncodePurchaseCredential(event)
		assert.Nil(t, err)
		calldata, err := easABI.Pack("attest", attestationRequest{
			Schema: common.HexToHash(testConfig.SchemaID),
			Data: attestationRequestData{
				Recipient: common.HexToAddress(event.WalletAddress),
				Revocable: true,
				Data:      credential,
				Value:     big.NewInt(0),
			},
		})
		assert.Nil(t, err)

		sender.EXPECT().SendTransaction(mock.Anything, models.TxRequest{
			To:    common.HexToAddress(testConfig.EASAddress).Hex(),
			Data:  hexutil.Encode(calldata),
			Value: big.NewInt(0),
		}).Return("0xabc", nil)

		txHash, err := a.Send(context.Background(), event)

		assert.Nil(t, err)
		assert.Equal(t, "0xabc", txHash)
	})

	t.Run("Send Error", func(t *testing.T) {
		a, sender, _ := newTestAttester(t)

		sender.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return("", errors.New("insufficient funds"))

		_, err := a.Send(context.Background(), purchaseEvent())

		assert.ErrorContains(t, err, "insufficient funds")
	})
}

func TestConfirm(t *testing.T) {

	t.Run("Waits For Receipt", func(t *testing.T) {
		a, _, client := newTestAttester(t)
		uid := [32]byte{0xaa, 0xbb}

		client.EXPECT().GetTransactionReceipt("0xabc").Return(nil, nil).Once()
		client.EXPECT().GetTransactionReceipt("0xabc").Return(&types.Receipt{
			Status: types.ReceiptStatusSuccessful,
			Logs:   []*types.Log{attestedLog(t, common.HexToAddress(testConfig.EASAddress), uid)},
		}, nil).Once()

		result, err := a.Confirm(context.Background(), "0xabc")

		assert.Nil(t, err)
		assert.Equal(t, hexutil.Encode(uid[:]), result)
	})

	t.Run("Reverted", func(t *testing.T) {
		a, _, client := newTestAttester(t)

		client.EXPECT().GetTransactionReceipt("0xabc").Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

		_, err := a.Confirm(context.Background(), "0xabc")

		assert.ErrorIs(t, err, ErrAttestationReverted)
	})

	t.Run("Not Mined Before Giving Up", func(t *testing.T) {
		a, _, client := newTestAttester(t)
		a.newBackOff = func() backoff.BackOff { return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2) }

		client.EXPECT().GetTransactionReceipt("0xabc").Return(nil, nil).Times(3)

		_, err := a.Confirm(context.Background(), "0xabc")

		assert.ErrorIs(t, err, errNotMined)
		assert.NotErrorIs(t, err, ErrAttestationReverted)
	})

	t.Run("Event From Other Contract", func(t *testing.T) {
		a, _, client := newTestAttester(t)

		client.EXPECT().GetTransactionReceipt("0xabc").Return(&types.Receipt{
			Status: types.ReceiptStatusSuccessful,
			Logs:   []*types.Log{attestedLog(t, common.HexToAddress("0x01"), [32]byte{0x01})},
		}, nil)

		_, err := a.Confirm(context.Background(), "0xabc")

		assert.ErrorContains(t, err, "no Attested event")
	})

	t.Run("Cancelled While Waiting", func(t *testing.T) {
		a, _, client := newTestAttester(t)
		ctx, cancel := context.WithCancel(context.Background())

		client.EXPECT().GetTransactionReceipt("0xabc").Run(func(string) { cancel() }).Return(nil, nil)

		_, err := a.Confirm(ctx, "0xabc")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEncodePurchaseCredential(t *testing.T) {
	data, err := EncodePurchaseCredential(purchaseEvent())
	assert.Nil(t, err)

	values, err := purchaseCredential.Unpack(data)
	assert.Nil(t, err)
	assert.Equal(t, "pt-1", values[0])
	assert.Equal(t, "builder-1", values[2])
	assert.Equal(t, big.NewInt(7), values[3])
	assert.Equal(t, "0xTX2", values[6])
	assert.Equal(t, big.NewInt(200), values[7])
}

func TestNewEASAttester(t *testing.T) {
	config := testConfig
	config.EASAddress = "nope"
	_, err := NewEASAttester(nil, nil, config)
	assert.ErrorContains(t, err, "invalid eas address")

	config = testConfig
	config.SchemaID = "0x1234"
	_, err = NewEASAttester(nil, nil, config)
	assert.ErrorContains(t, err, "invalid schema id")
}
