package eas

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/metrics"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/wallet"
)

var (
	errNotMined = errors.New("transaction not mined")

	// ErrAttestationReverted means the attestation tx was mined but failed, so
	// the purchase needs a new attestation.
	ErrAttestationReverted = errors.New("attestation reverted")
)

type Attester interface {
	// Send broadcasts an attestation for a finalized purchase and returns
	// its tx hash.
	Send(ctx context.Context, event models.NFTPurchaseEvent) (string, error)
	// Confirm waits for an attestation tx and returns the attestation uid.
	Confirm(ctx context.Context, txHash string) (string, error)
}

type EASAttester struct {
	sender     wallet.Sender
	client     eth.EthereumClient
	easAddress common.Address
	schemaID   common.Hash
	newBackOff func() backoff.BackOff
}

var _ Attester = &EASAttester{}

func (a *EASAttester) Send(ctx context.Context, event models.NFTPurchaseEvent) (string, error) {
	txHash, err := a.send(ctx, event)
	if err != nil {
		metrics.RecordAttestation(err)
		return "", err
	}

	log.WithFields(log.Fields{
		"pending_transaction_id": event.PendingTransactionID,
		"source_chain_tx_hash":   event.SourceChainTxHash,
		"attestation_tx_hash":    txHash,
	}).Debug("[ATTESTER] Attestation sent")
	return txHash, nil
}

func (a *EASAttester) send(ctx context.Context, event models.NFTPurchaseEvent) (string, error) {
	data, err := EncodePurchaseCredential(event)
	if err != nil {
		return "", fmt.Errorf("encode credential: %w", err)
	}

	calldata, err := easABI.Pack("attest", attestationRequest{
		Schema: a.schemaID,
		Data: attestationRequestData{
			Recipient: common.HexToAddress(event.WalletAddress),
			Revocable: true,
			Data:      data,
			Value:     big.NewInt(0),
		},
	})
	if err != nil {
		return "", fmt.Errorf("pack attest: %w", err)
	}

	txHash, err := a.sender.SendTransaction(ctx, models.TxRequest{
		To:    a.easAddress.Hex(),
		Data:  hexutil.Encode(calldata),
		Value: big.NewInt(0),
	})
	if err != nil {
		return "", fmt.Errorf("send attest: %w", err)
	}
	return txHash, nil
}

func (a *EASAttester) Confirm(ctx context.Context, txHash string) (string, error) {
	uid, err := a.confirm(ctx, txHash)
	if !errors.Is(err, errNotMined) {
		metrics.RecordAttestation(err)
	}
	return uid, err
}

func (a *EASAttester) confirm(ctx context.Context, txHash string) (string, error) {
	receipt, err := a.waitMined(ctx, txHash)
	if err != nil {
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%s: %w", txHash, ErrAttestationReverted)
	}

	uid, err := a.parseUID(receipt)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{"attestation_tx_hash": txHash, "uid": uid}).Info("[ATTESTER] Purchase attested")
	return uid, nil
}

func (a *EASAttester) waitMined(ctx context.Context, txHash string) (*types.Receipt, error) {
	var receipt *types.Receipt
	operation := func() error {
		r, err := a.client.GetTransactionReceipt(txHash)
		if err != nil {
			return err
		}
		if r == nil {
			return errNotMined
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(a.newBackOff(), ctx)); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", txHash, err)
	}
	return receipt, nil
}

func (a *EASAttester) parseUID(receipt *types.Receipt) (string, error) {
	attested := easABI.Events["Attested"]
	for _, l := range receipt.Logs {
		if l.Address != a.easAddress || len(l.Topics) == 0 || l.Topics[0] != attested.ID {
			continue
		}
		values, err := attested.Inputs.NonIndexed().Unpack(l.Data)
		if err != nil {
			return "", fmt.Errorf("unpack attested: %w", err)
		}
		uid, ok := values[0].([32]byte)
		if !ok {
			return "", errors.New("unexpected uid type")
		}
		return hexutil.Encode(uid[:]), nil
	}
	return "", errors.New("no Attested event in receipt")
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

var purchaseCredential = abi.Arguments{
	{Name: "purchaseId", Type: mustType("string")},
	{Name: "scoutId", Type: mustType("string")},
	{Name: "builderId", Type: mustType("string")},
	{Name: "tokenId", Type: mustType("uint256")},
	{Name: "tokensPurchased", Type: mustType("uint256")},
	{Name: "sourceChainTxHash", Type: mustType("string")},
	{Name: "destinationChainTxHash", Type: mustType("string")},
	{Name: "pointsValue", Type: mustType("uint256")},
}

// EncodePurchaseCredential ABI-encodes event following PurchaseSchema.
func EncodePurchaseCredential(event models.NFTPurchaseEvent) ([]byte, error) {
	return purchaseCredential.Pack(
		event.PendingTransactionID,
		event.ScoutID,
		event.BuilderID,
		big.NewInt(event.TokenID),
		big.NewInt(event.TokensPurchased),
		event.SourceChainTxHash,
		event.DestinationChainTxHash,
		big.NewInt(event.PointsValue),
	)
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	return b
}

func NewEASAttester(sender wallet.Sender, client eth.EthereumClient, config models.AttestationConfig) (*EASAttester, error) {
	if !common.IsHexAddress(config.EASAddress) {
		return nil, fmt.Errorf("invalid eas address %q", config.EASAddress)
	}
	schema, err := hexutil.Decode(config.SchemaID)
	if err != nil || len(schema) != common.HashLength {
		return nil, fmt.Errorf("invalid schema id %q", config.SchemaID)
	}

	return &EASAttester{
		sender:     sender,
		client:     client,
		easAddress: common.HexToAddress(config.EASAddress),
		schemaID:   common.BytesToHash(schema),
		newBackOff: defaultBackOff,
	}, nil
}
