package main

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/eas"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/purchase"
	"github.com/dan13ram/scout-mint-validator/wallet"
)

// ServiceDeps are the shared components background services are built from.
type ServiceDeps struct {
	Verifier      purchase.Verifier
	Sender        wallet.Sender
	BuilderClient eth.EthereumClient
}

type ServiceFactory struct {
	Name          string
	CreateService func(*sync.WaitGroup, ServiceDeps) app.Service
}

func CreateService(
	wg *sync.WaitGroup,
	factory ServiceFactory,
	deps ServiceDeps,
	serviceHealthMap map[string]models.ServiceHealth,
) app.Service {
	service := factory.CreateService(wg, deps)

	runner, ok := service.(*app.RunnerService)
	if !ok {
		return service
	}
	if lastHealth, found := serviceHealthMap[factory.Name]; found {
		log.Debugf("[MAIN] Restoring last health for %s", factory.Name)
		runner.RestoreHealth(lastHealth)
	}
	return service
}

func GetServiceFactories() []ServiceFactory {
	return []ServiceFactory{
		{
			Name: purchase.PendingVerifierName,
			CreateService: func(wg *sync.WaitGroup, deps ServiceDeps) app.Service {
				return purchase.NewPendingVerifier(wg, deps.Verifier)
			},
		},
		{
			Name: eas.AttesterName,
			CreateService: func(wg *sync.WaitGroup, deps ServiceDeps) app.Service {
				return eas.NewAttestationService(wg, deps.Sender, deps.BuilderClient)
			},
		},
	}
}

// LastServiceHealths indexes the last posted health of this host by service
// name. It is empty unless reading the last health is enabled.
func LastServiceHealths(healthcheck *app.HealthCheckRunner) map[string]models.ServiceHealth {
	serviceHealthMap := make(map[string]models.ServiceHealth)
	if !app.Config.HealthCheck.ReadLastHealth {
		return serviceHealthMap
	}

	lastHealth, err := healthcheck.FindLastHealth()
	if err != nil {
		log.Warn("[MAIN] Error getting last health: ", err)
		return serviceHealthMap
	}

	for _, serviceHealth := range lastHealth.ServiceHealths {
		serviceHealthMap[serviceHealth.Name] = serviceHealth
	}
	return serviceHealthMap
}
