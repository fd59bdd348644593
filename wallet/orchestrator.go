package wallet

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
)

type Sender interface {
	// SendTransaction signs and broadcasts req, returning the hash once the
	// node accepted it.
	SendTransaction(ctx context.Context, req models.TxRequest) (string, error)
}

type TransactionRecorder interface {
	SaveTransaction(ctx context.Context, input models.SaveTransactionInput) (models.SaveTransactionResult, error)
}

type TransactionChecker interface {
	CheckTransaction(ctx context.Context, input models.CheckTransactionInput) (models.CheckTransactionResult, error)
}

var errStillPending = errors.New("transaction still pending")

// PurchaseTarget describes where purchases settle.
type PurchaseTarget struct {
	DestinationChainID int64
	ContractAddress    string
	Currency           string
}

// TransactionOrchestrator drives a wallet-signed purchase through broadcast,
// recording and settlement, reporting progress on a PurchaseState.
type TransactionOrchestrator struct {
	sender     Sender
	recorder   TransactionRecorder
	checker    TransactionChecker
	state      *PurchaseState
	target     PurchaseTarget
	newBackOff func() backoff.BackOff
}

func (o *TransactionOrchestrator) State() *PurchaseState {
	return o.state
}

func (o *TransactionOrchestrator) SendMintTransaction(ctx context.Context, input models.MintTransactionInput) error {
	if err := ValidateMintInput(input); err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"to":               input.TxData.To,
		"value":            input.TxData.Value,
		"from_address":     input.TxMetadata.FromAddress,
		"source_chain_id":  input.TxMetadata.SourceChainID,
		"builder_token_id": input.TxMetadata.BuilderTokenID,
		"purchase_cost":    input.TxMetadata.PurchaseCost,
	})

	o.state.setExecuting(true)
	defer o.state.setExecuting(false)

	txHash, err := o.sender.SendTransaction(ctx, input.TxData)
	if err != nil {
		logger.WithError(err).Error("[ORCHESTRATOR] Creating a mint transaction failed")
		return common.NewError(common.ErrorKindTransactionRejected, "mint transaction was rejected", err)
	}

	o.state.markSent(txHash)
	logger.WithField("tx_hash", txHash).Info("[ORCHESTRATOR] Mint transaction sent")

	return o.save(ctx, txHash, input)
}

// RetrySave records a transaction that was broadcast but never saved.
func (o *TransactionOrchestrator) RetrySave(ctx context.Context, txHash string, input models.MintTransactionInput) error {
	if err := ValidateMintInput(input); err != nil {
		return err
	}
	if txHash == "" {
		return common.NewError(common.ErrorKindValidation, "txHash is required", nil)
	}
	return o.save(ctx, txHash, input)
}

func (o *TransactionOrchestrator) save(ctx context.Context, txHash string, input models.MintTransactionInput) error {
	logger := log.WithFields(log.Fields{
		"tx_hash":          txHash,
		"chain_id":         input.TxMetadata.SourceChainID,
		"builder_token_id": input.TxMetadata.BuilderTokenID,
		"purchase_cost":    input.TxMetadata.PurchaseCost,
	})

	o.state.setSaving(true)
	result, err := o.recorder.SaveTransaction(ctx, o.saveInput(txHash, input))
	o.state.setSaving(false)

	if err != nil {
		logger.WithError(err).Error("[ORCHESTRATOR] Saving mint transaction failed")
		saveErr := common.NewError(common.ErrorKindPersistence, "could not save transaction", err)
		o.state.setError(saveErr)
		return saveErr
	}

	o.state.markSaved(result)
	logger.WithFields(log.Fields{
		"pending_transaction_id": result.ID,
		"status":                 result.Status,
	}).Info("[ORCHESTRATOR] Successfully saved mint transaction")
	return nil
}

func (o *TransactionOrchestrator) saveInput(txHash string, input models.MintTransactionInput) models.SaveTransactionInput {
	return models.SaveTransactionInput{
		WalletAddress:       input.TxMetadata.FromAddress,
		SourceChainID:       input.TxMetadata.SourceChainID,
		DestinationChainID:  o.target.DestinationChainID,
		SourceChainTxHash:   txHash,
		TokenAmount:         input.TxMetadata.TokensToBuy,
		QuotedPrice:         strconv.FormatInt(input.TxMetadata.PurchaseCost, 10),
		QuotedPriceCurrency: o.target.Currency,
		TokenID:             input.TxMetadata.BuilderTokenID,
		BuilderID:           input.TxMetadata.BuilderID,
		ContractAddress:     o.target.ContractAddress,
	}
}

// WaitForSettlement polls the checker until the record leaves pending, the
// context ends, or the backoff gives up. A failed settlement is returned as
// SettlementFailed alongside the result.
func (o *TransactionOrchestrator) WaitForSettlement(ctx context.Context, pendingTransactionID string, txHash string) (models.CheckTransactionResult, error) {
	input := models.CheckTransactionInput{PendingTransactionID: pendingTransactionID, TxHash: txHash}
	logger := log.WithFields(log.Fields{"pending_transaction_id": pendingTransactionID, "tx_hash": txHash})

	var result models.CheckTransactionResult
	operation := func() error {
		res, err := o.checker.CheckTransaction(ctx, input)
		if err != nil {
			switch common.KindOf(err) {
			case common.ErrorKindValidation, common.ErrorKindNotFound, common.ErrorKindUnauthenticated, common.ErrorKindUnauthorized:
				return backoff.Permanent(err)
			}
			return err
		}
		if res.Status == models.StatusPending {
			return errStillPending
		}
		result = res
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.WithError(err).Debugf("[ORCHESTRATOR] Transaction not settled, retrying in %v", next)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(o.newBackOff(), ctx), notify); err != nil {
		logger.WithError(err).Warn("[ORCHESTRATOR] Error checking transaction")
		o.state.setError(err)
		return models.CheckTransactionResult{Status: models.StatusPending}, err
	}

	o.state.markChecked(result)

	if result.Status == models.StatusFailed {
		logger.Warn("[ORCHESTRATOR] Transaction failed")
		return result, common.NewError(common.ErrorKindSettlementFailed, "transaction failed", nil)
	}

	logger.WithField("destination_chain_tx_hash", result.DestinationChainTxHash).Info("[ORCHESTRATOR] Transaction was successful")
	return result, nil
}

func isHex(s string) bool {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	for _, c := range s[2:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

func ValidateMintInput(input models.MintTransactionInput) error {
	invalid := func(message string) error {
		return common.NewError(common.ErrorKindValidation, message, nil)
	}

	if len(input.TxData.To) <= 2 || !isHex(input.TxData.To) {
		return invalid("to must be a hex address")
	}
	if input.TxData.Data != "" && !isHex(input.TxData.Data) {
		return invalid("data must be hex")
	}
	if input.TxData.Value != nil && input.TxData.Value.Cmp(big.NewInt(0)) < 0 {
		return invalid("value must not be negative")
	}
	if input.TxMetadata.BuilderTokenID < 0 {
		return invalid("builderTokenId must not be negative")
	}
	if input.TxMetadata.TokensToBuy < 1 {
		return invalid("tokensToBuy must be at least 1")
	}
	if input.TxMetadata.SourceChainID <= 0 {
		return invalid("sourceChainId is required")
	}
	return nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 10 * time.Minute
	return b
}

func NewTransactionOrchestrator(
	sender Sender,
	recorder TransactionRecorder,
	checker TransactionChecker,
	state *PurchaseState,
	target PurchaseTarget,
) *TransactionOrchestrator {
	return &TransactionOrchestrator{
		sender:     sender,
		recorder:   recorder,
		checker:    checker,
		state:      state,
		target:     target,
		newBackOff: defaultBackOff,
	}
}
