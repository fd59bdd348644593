package app

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/models"
)

type Service interface {
	Start()
	Health() models.ServiceHealth
	Stop()
}

type Runner interface {
	Run()
	Status() models.RunnerStatus
}

type RunnerService struct {
	name     string
	runner   Runner
	wg       *sync.WaitGroup
	stop     chan bool
	interval time.Duration

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Infof("[%s] Starting run", x.name)
		x.runner.Run()
		x.UpdateHealth()
		log.Infof("[%s] Finished run, Sleeping for %v", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) UpdateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()
	status := x.runner.Status()

	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: lastSyncTime,
		NextSyncTime: lastSyncTime.Add(x.interval),
		Processed:    status.Processed,
		Pending:      status.Pending,
		Healthy:      true,
	}
}

// RestoreHealth seeds the reported health with the last posted one so the
// counters survive a restart until the first run completes.
func (x *RunnerService) RestoreHealth(lastHealth models.ServiceHealth) {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastHealth.Name = x.name
	x.health = lastHealth
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	// buffered so stopping a service that never started does not block
	select {
	case x.stop <- true:
	default:
	}
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) Service {
	if runner == nil || name == "" || interval == 0 {
		log.Error("[RUNNER] Invalid parameters")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		wg:       wg,
		stop:     make(chan bool, 1),
		interval: interval,
	}
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "EMPTY"

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) Service {
	return &EmptyService{
		wg: wg,
	}
}
