package purchase

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/metrics"
	"github.com/dan13ram/scout-mint-validator/models"
)

type Recorder interface {
	Save(ctx context.Context, input models.SaveTransactionInput) (models.SaveTransactionResult, error)
}

type ScoutRefresher interface {
	RefreshScout(ctx context.Context, scoutID string) error
}

type CongratsRefresher interface {
	RefreshCongratsImage(ctx context.Context, builderID string) error
}

// BridgeRecorder persists a purchase as pending, then runs a first
// verification and the display refreshes without failing the save.
type BridgeRecorder struct {
	verifier       Verifier
	scouts         ScoutRefresher
	congrats       CongratsRefresher
	builderChainID int64
	now            func() time.Time

	background sync.WaitGroup
}

var _ Recorder = &BridgeRecorder{}

func (r *BridgeRecorder) Save(ctx context.Context, input models.SaveTransactionInput) (models.SaveTransactionResult, error) {
	if err := ValidateSaveInput(&input, r.builderChainID); err != nil {
		return models.SaveTransactionResult{}, err
	}

	logger := log.WithFields(log.Fields{
		"scout_id":             input.ScoutID,
		"source_chain_id":      input.SourceChainID,
		"source_chain_tx_hash": input.SourceChainTxHash,
		"builder_id":           input.BuilderID,
	})

	tx := CreatePendingTransaction(input, r.now())
	id, err := app.DB.InsertOne(models.CollectionPendingTransactions, tx)
	metrics.RecordSave(err)
	if err != nil {
		logger.WithError(err).Error("[RECORDER] Error saving pending transaction")
		return models.SaveTransactionResult{}, common.NewError(common.ErrorKindPersistence, "could not save transaction", err)
	}
	logger = logger.WithField("pending_transaction_id", id.Hex())
	logger.Info("[RECORDER] Saved pending transaction")

	// the caller may disconnect once the record exists
	detached := context.WithoutCancel(ctx)

	r.background.Add(1)
	go func() {
		defer r.background.Done()
		if err := r.congrats.RefreshCongratsImage(detached, input.BuilderID); err != nil {
			logger.WithError(err).Warn("[RECORDER] Error refreshing congrats image")
		}
	}()

	status := models.StatusPending
	result, err := r.verifier.Check(detached, models.CheckTransactionInput{
		PendingTransactionID: id.Hex(),
		TxHash:               tx.SourceChainTxHash,
	})
	if err != nil {
		logger.WithError(err).Warn("[RECORDER] Error checking transaction")
	} else {
		status = result.Status
	}

	if err := r.scouts.RefreshScout(detached, input.ScoutID); err != nil {
		logger.WithError(err).Warn("[RECORDER] Error refreshing scout")
	}

	return models.SaveTransactionResult{
		ID:     id.Hex(),
		TxHash: tx.SourceChainTxHash,
		Status: status,
	}, nil
}

// Wait blocks until background refreshes started by Save have finished.
func (r *BridgeRecorder) Wait() {
	r.background.Wait()
}

func NewBridgeRecorder(verifier Verifier, scouts ScoutRefresher, congrats CongratsRefresher, builderChainID int64) *BridgeRecorder {
	return &BridgeRecorder{
		verifier:       verifier,
		scouts:         scouts,
		congrats:       congrats,
		builderChainID: builderChainID,
		now:            time.Now,
	}
}
