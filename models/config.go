package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Server              ServerConfig              `yaml:"server" json:"server"`
	BuilderNFT          EthereumConfig            `yaml:"builder_nft" json:"builder_nft"`
	SourceChains        []ChainConfig             `yaml:"source_chains" json:"source_chains"`
	Decent              DecentConfig              `yaml:"decent" json:"decent"`
	Congrats            CongratsConfig            `yaml:"congrats" json:"congrats"`
	Points              PointsConfig              `yaml:"points" json:"points"`
	Wallet              WalletConfig              `yaml:"wallet" json:"wallet"`
	Attestation         AttestationConfig         `yaml:"attestation" json:"attestation"`
	PendingVerifier     ServiceConfig             `yaml:"pending_verifier" json:"pending_verifier"`
	Attester            ServiceConfig             `yaml:"attester" json:"attester"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectID          string `yaml:"project_id" json:"project_id"`
	MongoSecretName    string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
	DecentAPIKeySecret string `yaml:"decent_api_key_secret_name" json:"decent_api_key_secret_name"`
	JWTSecretName      string `yaml:"jwt_secret_name" json:"jwt_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type ServerConfig struct {
	ListenAddress  string   `yaml:"listen_address" json:"listen_address"`
	Environment    string   `yaml:"environment" json:"environment"`
	JWTSecret      string   `yaml:"jwt_secret" json:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
}

// EthereumConfig describes the chain the builder NFT contract lives on.
// Bridged purchases settle here.
type EthereumConfig struct {
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID          string `yaml:"chain_id" json:"chain_id"`
	ContractAddress  string `yaml:"contract_address" json:"contract_address"`
	USDCAddress      string `yaml:"usdc_address" json:"usdc_address"`
}

type ChainConfig struct {
	ChainID          string `yaml:"chain_id" json:"chain_id"`
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
}

type DecentConfig struct {
	APIURL            string `yaml:"api_url" json:"api_url"`
	APIKey            string `yaml:"api_key" json:"api_key"`
	TimeoutMillis     int64  `yaml:"timeout_ms" json:"timeout_ms"`
	RequestsPerSecond int    `yaml:"requests_per_second" json:"requests_per_second"`
}

type CongratsConfig struct {
	RefreshURL    string `yaml:"refresh_url" json:"refresh_url"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type PointsConfig struct {
	PointsPerUSDC       int64 `yaml:"points_per_usdc" json:"points_per_usdc"`
	BuilderSharePercent int64 `yaml:"builder_share_percent" json:"builder_share_percent"`
}

type WalletConfig struct {
	Mnemonic      string `yaml:"mnemonic" json:"mnemonic"`
	HDPath        string `yaml:"hd_path" json:"hd_path"`
	GcpKmsKeyName string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
}

type AttestationConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	EASAddress string `yaml:"eas_address" json:"eas_address"`
	SchemaID   string `yaml:"schema_id" json:"schema_id"`
	BatchSize  int64  `yaml:"batch_size" json:"batch_size"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}
