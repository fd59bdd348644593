package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	WalletAddress  string              `bson:"wallet_address" json:"wallet_address"`
	BuilderChainID string              `bson:"builder_chain_id" json:"builder_chain_id"`
	Hostname       string              `bson:"hostname" json:"hostname"`
	Healthy        bool                `bson:"healthy" json:"healthy"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
	ServiceHealths []ServiceHealth     `bson:"service_healths" json:"service_healths"`
}

type ServiceHealth struct {
	Name         string    `bson:"name" json:"name"`
	Healthy      bool      `bson:"healthy" json:"healthy"`
	LastSyncTime time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime time.Time `bson:"next_sync_time" json:"next_sync_time"`
	Processed    string    `bson:"processed" json:"processed"`
	Pending      string    `bson:"pending" json:"pending"`
}

type RunnerStatus struct {
	Processed string
	Pending   string
}
