package app

import (
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/scout-mint-validator/models"
)

const (
	HealthServiceName = "HEALTH"
)

type HealthCheckRunner struct {
	walletAddress  string
	builderChainID string
	hostname       string

	servicesMu sync.RWMutex
	services   []Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.servicesMu.Lock()
	defer x.servicesMu.Unlock()

	x.services = services
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.servicesMu.RLock()
	defer x.servicesMu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) Healthy() bool {
	for _, health := range x.ServiceHealths() {
		if !health.Healthy {
			return false
		}
	}
	return true
}

func (x *HealthCheckRunner) filter() bson.M {
	return bson.M{
		"wallet_address": x.walletAddress,
		"hostname":       x.hostname,
	}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	err := DB.FindOne(models.CollectionHealthChecks, x.filter(), &health)
	return health, err
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	onInsert := bson.M{
		"wallet_address":   x.walletAddress,
		"builder_chain_id": x.builderChainID,
		"hostname":         x.hostname,
		"created_at":       time.Now(),
	}

	onUpdate := bson.M{
		"healthy":         x.Healthy(),
		"service_healths": x.ServiceHealths(),
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	if _, err := DB.UpsertOne(models.CollectionHealthChecks, x.filter(), update); err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck(walletAddress string) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health check")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		walletAddress:  walletAddress,
		builderChainID: Config.BuilderNFT.ChainID,
		hostname:       hostname,
	}

	log.Info("[HEALTH] Initialized health check")

	return x
}
