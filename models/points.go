package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionPointsReceipts = "points_receipts"
	CollectionScouts         = "scouts"
	CollectionClaimScreens   = "scout_claim_screens"
)

const (
	PointsEventNFTPurchase = "nft_purchase"
)

type PointsReceipt struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RecipientID string              `bson:"recipient_id" json:"recipient_id"`
	Value       int64               `bson:"value" json:"value"`
	Season      string              `bson:"season" json:"season"`
	Event       string              `bson:"event" json:"event"`
	Source      string              `bson:"source" json:"source"`
	ClaimedAt   *time.Time          `bson:"claimed_at" json:"claimed_at"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}

type Scout struct {
	Id             string    `bson:"_id" json:"_id"`
	CurrentBalance int64     `bson:"current_balance" json:"current_balance"`
	NFTsPurchased  int64     `bson:"nfts_purchased" json:"nfts_purchased"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

type ClaimScreen struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Week      string    `bson:"week" json:"week"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
