package purchase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
)

// MongoScoutRefresher recomputes the purchase count shown on a scout profile.
type MongoScoutRefresher struct {
	now func() time.Time
}

var _ ScoutRefresher = &MongoScoutRefresher{}

func (s *MongoScoutRefresher) RefreshScout(ctx context.Context, scoutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var events []models.NFTPurchaseEvent
	if err := app.DB.FindMany(models.CollectionNFTPurchaseEvents, bson.M{"scout_id": scoutID}, &events); err != nil {
		return common.NewError(common.ErrorKindPersistence, "could not load purchases", err)
	}

	var purchased int64
	for _, event := range events {
		purchased += event.TokensPurchased
	}

	update := bson.M{
		"$set": bson.M{
			"nfts_purchased": purchased,
			"updated_at":     s.now(),
		},
	}
	if _, err := app.DB.UpsertOne(models.CollectionScouts, bson.M{"_id": scoutID}, update); err != nil {
		return common.NewError(common.ErrorKindPersistence, "could not update scout", err)
	}
	return nil
}

func NewScoutRefresher() *MongoScoutRefresher {
	return &MongoScoutRefresher{now: time.Now}
}
