package config

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
	"github/orbitpulse/orbit-gateway/internal/util"
)

// EchoServer configures the HTTP surface.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	GracefulShutdownTimeout        time.Duration
	EnablePrometheusMiddleware     bool
}

// LoggerServer configures zerolog. All output goes to stderr, stdout is
// reserved for the tool protocol.
type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	PrettyPrintConsole bool
}

// CatalogServer configures the remote chain catalog cache.
type CatalogServer struct {
	URL              string
	TTL              time.Duration
	FetchTimeout     time.Duration
	CustomChainsPath string
}

// RPCServer configures upstream node access.
type RPCServer struct {
	RequestTimeout  time.Duration
	ParentChainURLs map[int64]string
}

// MCPServer configures the stdio tool server.
type MCPServer struct {
	Enabled    bool
	ServerName string
}

// ManagementServer configures the probe endpoints.
type ManagementServer struct {
	LivenessTimeout  time.Duration
	ReadinessTimeout time.Duration
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Catalog    CatalogServer
	RPC        RPCServer
	MCP        MCPServer
	Management ManagementServer
}

// DefaultServiceConfigFromEnv returns the server config as parsed from
// the environment. A local .env file is applied first if present.
func DefaultServiceConfigFromEnv() Server {
	// https://github.com/subosito/gotenv#usage
	gotenv.Load() //nolint:errcheck

	return Server{
		Echo: EchoServer{
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			GracefulShutdownTimeout:        time.Second * time.Duration(util.GetEnvAsInt("SERVER_ECHO_GRACEFUL_SHUTDOWN_TIMEOUT_SECONDS", 10)),
			EnablePrometheusMiddleware:     util.GetEnvAsBool("SERVER_ECHO_ENABLE_PROMETHEUS_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Catalog: CatalogServer{
			URL:              util.GetEnv("SERVER_CATALOG_URL", "https://raw.githubusercontent.com/OffchainLabs/arbitrum-token-bridge/master/packages/arb-token-bridge-ui/src/util/orbitChainsData.json"),
			TTL:              time.Second * time.Duration(util.GetEnvAsInt("SERVER_CATALOG_TTL_SECONDS", 300)),
			FetchTimeout:     time.Second * time.Duration(util.GetEnvAsInt("SERVER_CATALOG_FETCH_TIMEOUT_SECONDS", 10)),
			CustomChainsPath: util.GetEnv("SERVER_CATALOG_CUSTOM_CHAINS_PATH", ""),
		},
		RPC: RPCServer{
			RequestTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_RPC_REQUEST_TIMEOUT_SECONDS", 30)),
			ParentChainURLs: map[int64]string{
				1:        util.GetEnv("SERVER_RPC_PARENT_MAINNET_URL", "https://ethereum-rpc.publicnode.com"),
				11155111: util.GetEnv("SERVER_RPC_PARENT_SEPOLIA_URL", "https://ethereum-sepolia-rpc.publicnode.com"),
			},
		},
		MCP: MCPServer{
			Enabled:    util.GetEnvAsBool("SERVER_MCP_ENABLED", true),
			ServerName: util.GetEnv("SERVER_MCP_SERVER_NAME", "orbit-gateway"),
		},
		Management: ManagementServer{
			LivenessTimeout:  time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SECONDS", 9)),
			ReadinessTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SECONDS", 4)),
		},
	}
}
