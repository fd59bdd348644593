package main

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/api"
	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/decent"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/points"
	"github.com/dan13ram/scout-mint-validator/purchase"
	"github.com/dan13ram/scout-mint-validator/wallet"
)

type options struct {
	Config string `short:"c" long:"config" description:"path to the yaml config file"`
	Env    string `short:"e" long:"env" description:"path to a .env file"`
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("[MAIN] Error resolving path: ", err)
	}
	return abs
}

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	app.InitConfig(absPath(opts.Config), absPath(opts.Env))
	app.InitLogger()
	app.InitDB()

	pool, err := eth.NewPool(app.Config.BuilderNFT, app.Config.SourceChains)
	if err != nil {
		log.Fatal("[MAIN] Error connecting to chains: ", err)
	}
	pool.ValidateNetworks()

	builderChainID, err := strconv.ParseInt(app.Config.BuilderNFT.ChainID, 10, 64)
	if err != nil {
		log.Fatal("[MAIN] Invalid builder chain id: ", err)
	}
	builderClient, ok := pool.Get(builderChainID)
	if !ok {
		log.Fatal("[MAIN] No client for builder chain ", builderChainID)
	}

	var sender wallet.Sender
	walletAddress := ""
	signer, err := app.CreateWalletSigner()
	switch {
	case err == nil:
		defer signer.Destroy()
		walletAddress = signer.EthAddress().Hex()
		sender = wallet.NewEthSender(builderClient, signer)
	case app.Config.Attestation.Enabled:
		log.Fatal("[MAIN] Error initializing wallet signer: ", err)
	default:
		log.Warn("[MAIN] No wallet configured, attestations are unavailable")
	}

	ledger := points.NewLedger()
	verifier := purchase.NewBridgeVerifier(decent.NewClient(app.Config.Decent), pool, ledger, app.Config.Points)
	recorder := purchase.NewBridgeRecorder(
		verifier,
		purchase.NewScoutRefresher(),
		purchase.NewCongratsRefresher(app.Config.Congrats),
		builderChainID,
	)
	claimer := points.NewClaimPointsAction(ledger, app.Config.Server.Environment)

	healthcheck := app.NewHealthCheck(walletAddress)
	serviceHealthMap := LastServiceHealths(healthcheck)

	wg := &sync.WaitGroup{}
	deps := ServiceDeps{
		Verifier:      verifier,
		Sender:        sender,
		BuilderClient: builderClient,
	}

	var services []app.Service
	for _, factory := range GetServiceFactories() {
		services = append(services, CreateService(wg, factory, deps, serviceHealthMap))
	}

	handler := api.NewHandler(recorder, verifier, claimer, api.NewAuthenticator(app.Config.Server.JWTSecret), healthcheck)
	services = append(services, api.NewServer(wg, handler, app.Config.Server))

	healthcheck.SetServices(services)
	services = append(services, app.NewRunnerService(
		app.HealthServiceName,
		healthcheck,
		wg,
		time.Duration(app.Config.HealthCheck.IntervalMillis)*time.Millisecond,
	))

	log.Info("[MAIN] Starting services")
	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	// Gracefully shut down server
	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down server...")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()
	recorder.Wait()

	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting from database: ", err)
	}
	log.Info("[MAIN] Server gracefully stopped")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
