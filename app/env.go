package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	log.Debug("[ENV] Reading config from env")

	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	if os.Getenv("MONGODB_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("MONGODB_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MONGODB_TIMEOUT_MS: ", err.Error())
		} else {
			Config.MongoDB.TimeoutMillis = timeoutMillis
		}
	}

	// server
	if os.Getenv("SERVER_LISTEN_ADDRESS") != "" {
		Config.Server.ListenAddress = os.Getenv("SERVER_LISTEN_ADDRESS")
	}
	if os.Getenv("SERVER_ENVIRONMENT") != "" {
		Config.Server.Environment = os.Getenv("SERVER_ENVIRONMENT")
	}
	if os.Getenv("SERVER_JWT_SECRET") != "" {
		Config.Server.JWTSecret = os.Getenv("SERVER_JWT_SECRET")
	}
	if os.Getenv("SERVER_ALLOWED_ORIGINS") != "" {
		Config.Server.AllowedOrigins = strings.Split(os.Getenv("SERVER_ALLOWED_ORIGINS"), ",")
	}

	// builder nft chain
	if os.Getenv("BUILDER_NFT_RPC_URL") != "" {
		Config.BuilderNFT.RPCURL = os.Getenv("BUILDER_NFT_RPC_URL")
	}
	if os.Getenv("BUILDER_NFT_CHAIN_ID") != "" {
		Config.BuilderNFT.ChainID = os.Getenv("BUILDER_NFT_CHAIN_ID")
	}
	if os.Getenv("BUILDER_NFT_RPC_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("BUILDER_NFT_RPC_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing BUILDER_NFT_RPC_TIMEOUT_MS: ", err.Error())
		} else {
			Config.BuilderNFT.RPCTimeoutMillis = timeoutMillis
		}
	}
	if os.Getenv("BUILDER_NFT_CONTRACT_ADDRESS") != "" {
		Config.BuilderNFT.ContractAddress = os.Getenv("BUILDER_NFT_CONTRACT_ADDRESS")
	}
	if os.Getenv("BUILDER_NFT_USDC_ADDRESS") != "" {
		Config.BuilderNFT.USDCAddress = os.Getenv("BUILDER_NFT_USDC_ADDRESS")
	}

	// decent
	if os.Getenv("DECENT_API_URL") != "" {
		Config.Decent.APIURL = os.Getenv("DECENT_API_URL")
	}
	if os.Getenv("DECENT_API_KEY") != "" {
		Config.Decent.APIKey = os.Getenv("DECENT_API_KEY")
	}
	if os.Getenv("DECENT_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("DECENT_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing DECENT_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Decent.TimeoutMillis = timeoutMillis
		}
	}
	if os.Getenv("DECENT_REQUESTS_PER_SECOND") != "" {
		rps, err := strconv.Atoi(os.Getenv("DECENT_REQUESTS_PER_SECOND"))
		if err != nil {
			log.Warn("[ENV] Error parsing DECENT_REQUESTS_PER_SECOND: ", err.Error())
		} else {
			Config.Decent.RequestsPerSecond = rps
		}
	}

	// congrats image
	if os.Getenv("CONGRATS_REFRESH_URL") != "" {
		Config.Congrats.RefreshURL = os.Getenv("CONGRATS_REFRESH_URL")
	}

	// points
	if os.Getenv("POINTS_PER_USDC") != "" {
		pointsPerUSDC, err := strconv.ParseInt(os.Getenv("POINTS_PER_USDC"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing POINTS_PER_USDC: ", err.Error())
		} else {
			Config.Points.PointsPerUSDC = pointsPerUSDC
		}
	}
	if os.Getenv("POINTS_BUILDER_SHARE_PERCENT") != "" {
		share, err := strconv.ParseInt(os.Getenv("POINTS_BUILDER_SHARE_PERCENT"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing POINTS_BUILDER_SHARE_PERCENT: ", err.Error())
		} else {
			Config.Points.BuilderSharePercent = share
		}
	}

	// wallet
	if os.Getenv("WALLET_MNEMONIC") != "" {
		Config.Wallet.Mnemonic = os.Getenv("WALLET_MNEMONIC")
	}
	if os.Getenv("WALLET_HD_PATH") != "" {
		Config.Wallet.HDPath = os.Getenv("WALLET_HD_PATH")
	}
	if os.Getenv("WALLET_GCP_KMS_KEY_NAME") != "" {
		Config.Wallet.GcpKmsKeyName = os.Getenv("WALLET_GCP_KMS_KEY_NAME")
	}

	// attestation
	if os.Getenv("ATTESTATION_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("ATTESTATION_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing ATTESTATION_ENABLED: ", err.Error())
		} else {
			Config.Attestation.Enabled = enabled
		}
	}
	if os.Getenv("ATTESTATION_EAS_ADDRESS") != "" {
		Config.Attestation.EASAddress = os.Getenv("ATTESTATION_EAS_ADDRESS")
	}
	if os.Getenv("ATTESTATION_SCHEMA_ID") != "" {
		Config.Attestation.SchemaID = os.Getenv("ATTESTATION_SCHEMA_ID")
	}

	// services
	if os.Getenv("PENDING_VERIFIER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("PENDING_VERIFIER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing PENDING_VERIFIER_ENABLED: ", err.Error())
		} else {
			Config.PendingVerifier.Enabled = enabled
		}
	}
	if os.Getenv("PENDING_VERIFIER_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("PENDING_VERIFIER_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing PENDING_VERIFIER_INTERVAL_MS: ", err.Error())
		} else {
			Config.PendingVerifier.IntervalMillis = intervalMillis
		}
	}
	if os.Getenv("ATTESTER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("ATTESTER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing ATTESTER_ENABLED: ", err.Error())
		} else {
			Config.Attester.Enabled = enabled
		}
	}
	if os.Getenv("ATTESTER_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("ATTESTER_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ATTESTER_INTERVAL_MS: ", err.Error())
		} else {
			Config.Attester.IntervalMillis = intervalMillis
		}
	}

	// logger
	if os.Getenv("LOGGER_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOGGER_LEVEL")
	}

	// google secret manager
	if os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing GOOGLE_SECRET_MANAGER_ENABLED: ", err.Error())
		} else {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}

	log.Debug("[ENV] Config read from env")
}
