package app

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
)

var (
	Config models.Config
)

const (
	EnvironmentTest = "test"
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	setConfigDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	log.Debugf("[CONFIG] Reading config file %s", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}

	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}

	log.Debugf("[CONFIG] Config loaded from %s", configFile)
	return true
}

func setConfigDefaults() {
	if Config.MongoDB.TimeoutMillis == 0 {
		Config.MongoDB.TimeoutMillis = 5000
	}
	if Config.BuilderNFT.RPCTimeoutMillis == 0 {
		Config.BuilderNFT.RPCTimeoutMillis = 5000
	}
	for i := range Config.SourceChains {
		if Config.SourceChains[i].RPCTimeoutMillis == 0 {
			Config.SourceChains[i].RPCTimeoutMillis = Config.BuilderNFT.RPCTimeoutMillis
		}
	}
	if Config.Decent.APIURL == "" {
		Config.Decent.APIURL = "https://box-v4.api.decent.xyz/api"
	}
	if Config.Decent.TimeoutMillis == 0 {
		Config.Decent.TimeoutMillis = 10000
	}
	if Config.Decent.RequestsPerSecond == 0 {
		Config.Decent.RequestsPerSecond = 5
	}
	if Config.Congrats.TimeoutMillis == 0 {
		Config.Congrats.TimeoutMillis = 30000
	}
	if Config.Points.PointsPerUSDC == 0 {
		Config.Points.PointsPerUSDC = 10
	}
	if Config.Points.BuilderSharePercent == 0 {
		Config.Points.BuilderSharePercent = 20
	}
	if Config.Wallet.HDPath == "" {
		Config.Wallet.HDPath = common.DefaultETHHDPath
	}
	if Config.Attestation.BatchSize == 0 {
		Config.Attestation.BatchSize = 20
	}
	if Config.Attestation.EASAddress == "" {
		// EAS predeploy on OP stack chains
		Config.Attestation.EASAddress = "0x4200000000000000000000000000000000000021"
	}
	if Config.Server.ListenAddress == "" {
		Config.Server.ListenAddress = ":8080"
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		Config.HealthCheck.IntervalMillis = 60000
	}
	if Config.PendingVerifier.IntervalMillis == 0 {
		Config.PendingVerifier.IntervalMillis = 60000
	}
	if Config.Attester.IntervalMillis == 0 {
		Config.Attester.IntervalMillis = 300000
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}

	if Config.BuilderNFT.RPCURL == "" {
		log.Fatal("[CONFIG] BuilderNFT.RPCURL is required")
	}
	if Config.BuilderNFT.ChainID == "" {
		log.Fatal("[CONFIG] BuilderNFT.ChainID is required")
	}
	if !common.IsValidEthereumAddress(Config.BuilderNFT.ContractAddress) {
		log.Fatal("[CONFIG] BuilderNFT.ContractAddress must be a valid address")
	}
	if Config.BuilderNFT.USDCAddress != "" && !common.IsValidEthereumAddress(Config.BuilderNFT.USDCAddress) {
		log.Fatal("[CONFIG] BuilderNFT.USDCAddress must be a valid address")
	}

	for i, chain := range Config.SourceChains {
		if chain.ChainID == "" || chain.RPCURL == "" {
			log.Fatalf("[CONFIG] SourceChains[%d] requires chain_id and rpc_url", i)
		}
	}

	if Config.Server.JWTSecret == "" {
		log.Fatal("[CONFIG] Server.JWTSecret is required")
	}

	if Config.Points.BuilderSharePercent < 0 || Config.Points.BuilderSharePercent > 100 {
		log.Fatal("[CONFIG] Points.BuilderSharePercent must be between 0 and 100")
	}

	if Config.Attestation.Enabled {
		if Config.Attestation.SchemaID == "" {
			log.Fatal("[CONFIG] Attestation.SchemaID is required")
		}
		if Config.Wallet.Mnemonic == "" && Config.Wallet.GcpKmsKeyName == "" {
			log.Fatal("[CONFIG] Wallet.Mnemonic or Wallet.GcpKmsKeyName is required for attestations")
		}
	}

	log.Debug("[CONFIG] Config validated")
}
