package points

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/metrics"
	"github.com/dan13ram/scout-mint-validator/models"
)

type Ledger interface {
	ClaimPoints(ctx context.Context, userID string) (models.ClaimResult, error)
	// CreditPoints stores receipt unless one with the same source exists.
	// It reports whether a new receipt was written.
	CreditPoints(ctx context.Context, receipt models.PointsReceipt) (bool, error)
}

type MongoLedger struct {
	now func() time.Time
}

var _ Ledger = &MongoLedger{}

// ClaimPoints moves every unclaimed receipt of userID into the scout balance.
// Receipts are marked with the claim time first and only the ones this call
// marked are credited. If the balance update fails the marks are reverted.
func (l *MongoLedger) ClaimPoints(ctx context.Context, userID string) (models.ClaimResult, error) {
	if userID == "" {
		return models.ClaimResult{}, common.NewError(common.ErrorKindUnauthenticated, "no user", nil)
	}
	if err := ctx.Err(); err != nil {
		return models.ClaimResult{}, err
	}

	// mongo stores milliseconds, claimed receipts are found again by this value
	now := l.now().Truncate(time.Millisecond)
	logger := log.WithFields(log.Fields{"user_id": userID, "season": Season(now)})

	lockId, err := app.DB.XLock(claimLockResource(userID))
	if err != nil {
		logger.WithError(err).Error("[POINTS] Error locking claim")
		return models.ClaimResult{}, common.NewError(common.ErrorKindPersistence, "could not lock claim", err)
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			logger.WithError(err).Error("[POINTS] Error unlocking claim")
		}
	}()

	var receipts []models.PointsReceipt
	filter := bson.M{"recipient_id": userID, "claimed_at": nil}
	if err := app.DB.FindMany(models.CollectionPointsReceipts, filter, &receipts); err != nil {
		logger.WithError(err).Error("[POINTS] Error finding unclaimed receipts")
		return models.ClaimResult{}, common.NewError(common.ErrorKindPersistence, "could not load receipts", err)
	}

	ids := receiptIDs(receipts)
	if len(ids) == 0 {
		logger.Debug("[POINTS] Nothing to claim")
		return models.ClaimResult{Total: 0}, nil
	}

	mark := bson.M{"$set": bson.M{"claimed_at": now}}
	claimed, err := app.DB.UpdateMany(models.CollectionPointsReceipts, bson.M{"_id": bson.M{"$in": ids}, "claimed_at": nil}, mark)
	if err != nil {
		logger.WithError(err).Error("[POINTS] Error marking receipts claimed")
		l.revertClaim(logger, ids, now)
		return models.ClaimResult{}, common.NewError(common.ErrorKindPersistence, "could not claim receipts", err)
	}

	if claimed != int64(len(ids)) {
		logger.WithFields(log.Fields{"found": len(ids), "claimed": claimed}).Warn("[POINTS] Some receipts were claimed elsewhere")
		receipts = nil
		if err := app.DB.FindMany(models.CollectionPointsReceipts, claimedFilter(ids, now), &receipts); err != nil {
			logger.WithError(err).Error("[POINTS] Error loading claimed receipts")
			l.revertClaim(logger, ids, now)
			return models.ClaimResult{}, common.NewError(common.ErrorKindPersistence, "could not load claimed receipts", err)
		}
	}

	var total int64
	for _, receipt := range receipts {
		total += receipt.Value
	}
	if total == 0 {
		return models.ClaimResult{Total: 0}, nil
	}

	balance := bson.M{
		"$inc": bson.M{"current_balance": total},
		"$set": bson.M{"updated_at": now},
	}
	if _, err := app.DB.UpsertOne(models.CollectionScouts, bson.M{"_id": userID}, balance); err != nil {
		logger.WithError(err).Error("[POINTS] Error updating balance")
		l.revertClaim(logger, ids, now)
		return models.ClaimResult{}, common.NewError(common.ErrorKindPersistence, "could not update balance", err)
	}

	metrics.RecordPointsClaimed(total)
	logger.WithField("total", total).Info("[POINTS] Claimed points")

	return models.ClaimResult{Total: total}, nil
}

// revertClaim unmarks the receipts this claim marked so a later claim can
// pick them up again.
func (l *MongoLedger) revertClaim(logger *log.Entry, ids []primitive.ObjectID, claimedAt time.Time) {
	unmark := bson.M{"$set": bson.M{"claimed_at": nil}}
	reverted, err := app.DB.UpdateMany(models.CollectionPointsReceipts, claimedFilter(ids, claimedAt), unmark)
	if err != nil {
		logger.WithError(err).WithField("receipt_ids", ids).Error("[POINTS] Error reverting claim, receipts need manual repair")
		return
	}
	logger.WithField("reverted", reverted).Warn("[POINTS] Reverted claim")
}

func claimedFilter(ids []primitive.ObjectID, claimedAt time.Time) bson.M {
	return bson.M{"_id": bson.M{"$in": ids}, "claimed_at": claimedAt}
}

func receiptIDs(receipts []models.PointsReceipt) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(receipts))
	for _, receipt := range receipts {
		if receipt.Id != nil {
			ids = append(ids, *receipt.Id)
		}
	}
	return ids
}

func (l *MongoLedger) CreditPoints(ctx context.Context, receipt models.PointsReceipt) (bool, error) {
	if receipt.Source == "" || receipt.RecipientID == "" {
		return false, common.NewError(common.ErrorKindValidation, "receipt requires a source and recipient", nil)
	}

	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = l.now()
	}
	if receipt.Season == "" {
		receipt.Season = Season(receipt.CreatedAt)
	}

	_, err := app.DB.InsertOne(models.CollectionPointsReceipts, receipt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.WithField("source", receipt.Source).Debug("[POINTS] Receipt already credited")
			return false, nil
		}
		log.WithError(err).WithField("source", receipt.Source).Error("[POINTS] Error crediting points")
		return false, common.NewError(common.ErrorKindPersistence, "could not credit points", err)
	}

	metrics.RecordPointsCredited(receipt.Value)
	log.WithFields(log.Fields{
		"source":       receipt.Source,
		"recipient_id": receipt.RecipientID,
		"value":        receipt.Value,
	}).Info("[POINTS] Credited points")

	return true, nil
}

func NewLedger() *MongoLedger {
	return &MongoLedger{now: time.Now}
}
