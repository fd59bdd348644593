package purchase

import (
	"context"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/models"
)

const (
	PendingVerifierName = "PENDING VERIFIER"

	pendingBatchSize   = 50
	pendingGracePeriod = time.Minute
)

// PendingTransactionRunner re-checks records nobody polled to completion.
type PendingTransactionRunner struct {
	verifier    Verifier
	batchSize   int64
	gracePeriod time.Duration
	now         func() time.Time

	settled int64
	pending int64
}

func (x *PendingTransactionRunner) Run() {
	x.settled = 0
	x.pending = 0

	filter := bson.M{
		"status":     models.StatusPending,
		"created_at": bson.M{"$lt": x.now().Add(-x.gracePeriod)},
	}
	sort := bson.D{{Key: "created_at", Value: 1}}

	var txs []models.PendingTransaction
	if err := app.DB.FindManySorted(models.CollectionPendingTransactions, filter, sort, x.batchSize, &txs); err != nil {
		log.WithError(err).Error("[PENDING VERIFIER] Error fetching pending transactions")
		return
	}

	log.Infof("[PENDING VERIFIER] Found %d pending transactions", len(txs))

	for _, tx := range txs {
		if tx.Id == nil {
			continue
		}
		result, err := x.verifier.Check(context.Background(), models.CheckTransactionInput{
			PendingTransactionID: tx.Id.Hex(),
			TxHash:               tx.SourceChainTxHash,
		})
		if err != nil {
			log.WithError(err).WithField("pending_transaction_id", tx.Id.Hex()).Warn("[PENDING VERIFIER] Error checking transaction")
			x.pending++
			continue
		}
		if result.Status == models.StatusPending {
			x.pending++
			continue
		}
		x.settled++
	}
}

func (x *PendingTransactionRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		Processed: strconv.FormatInt(x.settled, 10),
		Pending:   strconv.FormatInt(x.pending, 10),
	}
}

func NewPendingTransactionRunner(verifier Verifier) *PendingTransactionRunner {
	return &PendingTransactionRunner{
		verifier:    verifier,
		batchSize:   pendingBatchSize,
		gracePeriod: pendingGracePeriod,
		now:         time.Now,
	}
}

func NewPendingVerifier(wg *sync.WaitGroup, verifier Verifier) app.Service {
	if !app.Config.PendingVerifier.Enabled {
		log.Debug("[PENDING VERIFIER] Pending verifier disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[PENDING VERIFIER] Initializing pending verifier")

	runner := NewPendingTransactionRunner(verifier)

	return app.NewRunnerService(
		PendingVerifierName,
		runner,
		wg,
		time.Duration(app.Config.PendingVerifier.IntervalMillis)*time.Millisecond,
	)
}
