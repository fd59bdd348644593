package points

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/models"
)

// ClaimPointsAction is the user facing claim operation.
type ClaimPointsAction struct {
	ledger      Ledger
	environment string
	now         func() time.Time
}

func (a *ClaimPointsAction) ClaimPoints(ctx context.Context, userID string) (models.ClaimPointsResult, error) {
	result, err := a.ledger.ClaimPoints(ctx, userID)
	if err != nil {
		return models.ClaimPointsResult{}, err
	}

	if a.environment != app.EnvironmentTest {
		a.markClaimScreen(userID)
	}

	return models.ClaimPointsResult{Success: true, ClaimedPoints: result.Total}, nil
}

func (a *ClaimPointsAction) markClaimScreen(userID string) {
	now := a.now()
	week := Season(now)

	filter := bson.M{"user_id": userID, "week": week}
	update := bson.M{"$setOnInsert": bson.M{
		"user_id":    userID,
		"week":       week,
		"created_at": now,
	}}

	if _, err := app.DB.UpsertOne(models.CollectionClaimScreens, filter, update); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("[POINTS] Error recording claim screen")
	}
}

func NewClaimPointsAction(ledger Ledger, environment string) *ClaimPointsAction {
	return &ClaimPointsAction{
		ledger:      ledger,
		environment: environment,
		now:         time.Now,
	}
}
