package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/decent"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/metrics"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/points"
)

type Verifier interface {
	Check(ctx context.Context, input models.CheckTransactionInput) (models.CheckTransactionResult, error)
}

type ChainClients interface {
	Get(chainID int64) (eth.EthereumClient, bool)
}

type PointsCreditor interface {
	CreditPoints(ctx context.Context, receipt models.PointsReceipt) (bool, error)
}

// BridgeVerifier settles pending transactions against the bridge and the
// destination chain, and writes the ledger effects of a successful purchase.
type BridgeVerifier struct {
	bridge              decent.Client
	chains              ChainClients
	credits             PointsCreditor
	pointsPerUSDC       int64
	builderSharePercent int64
	now                 func() time.Time
}

var _ Verifier = &BridgeVerifier{}

func (v *BridgeVerifier) Check(ctx context.Context, input models.CheckTransactionInput) (models.CheckTransactionResult, error) {
	id, err := primitive.ObjectIDFromHex(input.PendingTransactionID)
	if err != nil {
		return models.CheckTransactionResult{}, validationError("invalid pendingTransactionId")
	}
	if input.TxHash == "" {
		return models.CheckTransactionResult{}, validationError("txHash is required")
	}

	logger := log.WithFields(log.Fields{
		"pending_transaction_id": input.PendingTransactionID,
		"tx_hash":                input.TxHash,
	})

	tx, err := findPendingTransaction(id)
	if err != nil {
		return models.CheckTransactionResult{}, err
	}

	if !strings.EqualFold(tx.SourceChainTxHash, input.TxHash) {
		return models.CheckTransactionResult{}, validationError("txHash does not match the pending transaction")
	}

	if tx.IsTerminal() {
		logger.WithField("status", tx.Status).Debug("[VERIFIER] Transaction already settled")
		return resultOf(tx), nil
	}

	status, destinationTxHash, err := v.settlement(ctx, tx)
	if err != nil {
		metrics.RecordVerification("unavailable")
		logger.WithError(err).Warn("[VERIFIER] Could not verify transaction")
		return models.CheckTransactionResult{}, common.NewError(common.ErrorKindVerificationUnavailable, "could not verify transaction", err)
	}

	if status == models.StatusPending {
		metrics.RecordVerification(models.StatusPending)
		logger.Debug("[VERIFIER] Transaction not settled yet")
		return models.CheckTransactionResult{Status: models.StatusPending}, nil
	}

	// ledger effects are idempotent, so they are written before the status
	// flips and retried by the next check if they fail
	if status == models.StatusSuccess {
		if err := v.finalize(ctx, id, tx, destinationTxHash); err != nil {
			logger.WithError(err).Error("[VERIFIER] Error finalizing purchase")
			return models.CheckTransactionResult{}, err
		}
	}

	return v.transition(id, status, destinationTxHash, logger)
}

func findPendingTransaction(id primitive.ObjectID) (*models.PendingTransaction, error) {
	var tx models.PendingTransaction
	err := app.DB.FindOne(models.CollectionPendingTransactions, bson.M{"_id": id}, &tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewError(common.ErrorKindNotFound, "pending transaction not found", err)
	}
	if err != nil {
		return nil, common.NewError(common.ErrorKindPersistence, "could not load pending transaction", err)
	}
	return &tx, nil
}

// settlement returns the status the transaction should move to and the
// destination chain hash when known.
func (v *BridgeVerifier) settlement(ctx context.Context, tx *models.PendingTransaction) (string, string, error) {
	if tx.SourceChainID == tx.DestinationChainID {
		return v.confirmReceipt(tx.DestinationChainID, tx.SourceChainTxHash)
	}

	res, err := v.bridge.GetStatus(ctx, tx.SourceChainID, tx.SourceChainTxHash)
	if err != nil {
		return "", "", err
	}

	switch res.Outcome() {
	case decent.OutcomeFailed:
		log.WithFields(log.Fields{"tx_hash": tx.SourceChainTxHash, "bridge_status": res.Status}).Info("[VERIFIER] Bridge reported failure")
		return models.StatusFailed, "", nil
	case decent.OutcomeExecuted:
		destinationTxHash := res.DestinationTxHash()
		if destinationTxHash == "" {
			return models.StatusPending, "", nil
		}
		return v.confirmReceipt(tx.DestinationChainID, destinationTxHash)
	default:
		return models.StatusPending, "", nil
	}
}

func (v *BridgeVerifier) confirmReceipt(chainID int64, txHash string) (string, string, error) {
	client, ok := v.chains.Get(chainID)
	if !ok {
		return "", "", fmt.Errorf("no client for chain %d", chainID)
	}

	receipt, err := client.GetTransactionReceipt(txHash)
	if err != nil {
		return "", "", fmt.Errorf("get receipt on chain %d: %w", chainID, err)
	}
	if receipt == nil {
		return models.StatusPending, "", nil
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return models.StatusFailed, txHash, nil
	}
	return models.StatusSuccess, txHash, nil
}

func (v *BridgeVerifier) finalize(ctx context.Context, id primitive.ObjectID, tx *models.PendingTransaction, destinationTxHash string) error {
	now := v.now()
	purchasePoints, err := PurchasePoints(tx.QuotedPrice, v.pointsPerUSDC)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"pending_transaction_id": id.Hex(),
			"quoted_price":           tx.QuotedPrice,
		}).Warn("[VERIFIER] Purchase recorded without points")
	}

	event := models.NFTPurchaseEvent{
		PendingTransactionID:   id.Hex(),
		ScoutID:                tx.ScoutID,
		WalletAddress:          tx.WalletAddress,
		BuilderID:              tx.BuilderID,
		TokenID:                tx.TokenID,
		TokensPurchased:        tx.TokenAmount,
		PaidAmount:             tx.QuotedPrice,
		PointsValue:            purchasePoints,
		SourceChainTxHash:      tx.SourceChainTxHash,
		DestinationChainTxHash: destinationTxHash,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if _, err := app.DB.InsertOne(models.CollectionNFTPurchaseEvents, event); err != nil && !mongo.IsDuplicateKeyError(err) {
		return common.NewError(common.ErrorKindPersistence, "could not record purchase", err)
	}

	builderPoints := BuilderShare(purchasePoints, v.builderSharePercent)
	if builderPoints <= 0 {
		return nil
	}

	receipt := models.PointsReceipt{
		RecipientID: tx.BuilderID,
		Value:       builderPoints,
		Season:      points.Season(now),
		Event:       models.PointsEventNFTPurchase,
		Source:      points.NFTPurchaseSource(tx.SourceChainTxHash),
		CreatedAt:   now,
	}
	if _, err := v.credits.CreditPoints(ctx, receipt); err != nil {
		return err
	}
	return nil
}

// transition moves the record out of pending. If another check got there
// first, the stored status wins.
func (v *BridgeVerifier) transition(id primitive.ObjectID, status string, destinationTxHash string, logger *log.Entry) (models.CheckTransactionResult, error) {
	filter := bson.M{"_id": id, "status": models.StatusPending}
	update := bson.M{
		"$set": bson.M{
			"status":                    status,
			"destination_chain_tx_hash": destinationTxHash,
			"updated_at":                v.now(),
		},
	}

	matched, err := app.DB.UpdateOne(models.CollectionPendingTransactions, filter, update)
	if err != nil {
		logger.WithError(err).Error("[VERIFIER] Error updating pending transaction")
		return models.CheckTransactionResult{}, common.NewError(common.ErrorKindPersistence, "could not update pending transaction", err)
	}

	if matched == 0 {
		current, err := findPendingTransaction(id)
		if err != nil {
			return models.CheckTransactionResult{}, err
		}
		logger.WithField("status", current.Status).Debug("[VERIFIER] Transaction settled concurrently")
		return resultOf(current), nil
	}

	metrics.RecordVerification(status)
	logger.WithFields(log.Fields{
		"status":                    status,
		"destination_chain_tx_hash": destinationTxHash,
	}).Info("[VERIFIER] Transaction settled")

	return models.CheckTransactionResult{Status: status, DestinationChainTxHash: destinationTxHash}, nil
}

func NewBridgeVerifier(bridge decent.Client, chains ChainClients, credits PointsCreditor, config models.PointsConfig) *BridgeVerifier {
	return &BridgeVerifier{
		bridge:              bridge,
		chains:              chains,
		credits:             credits,
		pointsPerUSDC:       config.PointsPerUSDC,
		builderSharePercent: config.BuilderSharePercent,
		now:                 time.Now,
	}
}
