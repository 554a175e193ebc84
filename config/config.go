package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"zumap/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = "10MB"
	defaultMaxRevealDistance  = 1000.0
	defaultSessionTTL         = 30 * time.Minute
	defaultPollInterval       = 5 * time.Second
	defaultProbeTimeout       = 3 * time.Second
	defaultDropsPath          = "drops"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects where drop records live: "firebase" or "sql"
	Store *StoreConfig `json:"store" yaml:"store"`

	// Database selects the SQL driver used by the sql store and the collector
	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for the realtime drop store and announcements
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Blob configuration for drop payload storage
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// Geofence configuration for reveal distances and map sessions
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Feed configuration for the drop feed
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Probe configuration for the network probe and demo mode
	Probe *ProbeConfig `json:"probe" yaml:"probe"`

	// QRCode configuration for drop share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker configuration for the collector process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the drop repository implementation
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver"`
}

// DatabaseConfig defines the SQL database driver
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file (or DSN) for the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// DatabaseURL of the realtime database holding drop records
	DatabaseURL string `json:"databaseUrl" yaml:"databaseUrl"`

	// DropsPath is the database node drops are stored under
	DropsPath string `json:"dropsPath" yaml:"dropsPath"`

	// AnnounceTopic is the FCM topic new drops are announced on; empty disables announcements
	AnnounceTopic string `json:"announceTopic" yaml:"announceTopic"`
}

// BlobConfig defines drop payload storage
type BlobConfig struct {
	// BucketURL is a gocloud.dev/blob URL, e.g. file:///var/zumap, mem://, gs://bucket, s3://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Prefix is prepended to every content key
	Prefix string `json:"prefix" yaml:"prefix"`

	// MaxUploadSize limits a single payload, e.g. "10MB"
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// GeofenceConfig defines reveal distance limits and map session lifetime
type GeofenceConfig struct {
	// MaxRevealDistance is the largest reveal distance a new drop may use, in meters
	MaxRevealDistance float64 `json:"maxRevealDistance" yaml:"maxRevealDistance"`

	// MaxNearbyRadius bounds the radius of nearby queries, in meters
	MaxNearbyRadius float64 `json:"maxNearbyRadius" yaml:"maxNearbyRadius"`

	// SessionTTL is how long an idle map session is kept
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
}

// FeedConfig defines how often the drop feed refreshes
type FeedConfig struct {
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// ProbeConfig defines the network probe and the demo drops served while it fails
type ProbeConfig struct {
	// URL is requested to decide whether the upstream network is reachable; empty disables probing
	URL      string        `json:"url" yaml:"url"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	Interval time.Duration `json:"interval" yaml:"interval"`

	// DemoDrops are served instead of stored drops while the probe fails
	DemoDrops []DemoDropConfig `json:"demoDrops" yaml:"demoDrops"`
}

// DemoDropConfig is a static drop served in demo mode
type DemoDropConfig struct {
	ID             string  `json:"id" yaml:"id"`
	Lat            float64 `json:"lat" yaml:"lat"`
	Lng            float64 `json:"lng" yaml:"lng"`
	Type           string  `json:"type" yaml:"type"`
	Content        string  `json:"content" yaml:"content"`
	Teaser         string  `json:"teaser" yaml:"teaser"`
	RevealDistance float64 `json:"revealDistance" yaml:"revealDistance"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the prometheus endpoint
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// WorkerConfig defines the collector worker's HTTP listener
type WorkerConfig struct {
	// Port of the push endpoint; zero falls back to http.port
	Port int `json:"port" yaml:"port"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = constants.DropStoreSQL
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = constants.DatabaseDriverSQLite
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Firebase.DropsPath == "" {
		cfg.Firebase.DropsPath = defaultDropsPath
	}
	if cfg.Blob == nil {
		cfg.Blob = &BlobConfig{}
	}
	if strings.TrimSpace(cfg.Blob.MaxUploadSize) == "" {
		cfg.Blob.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.MaxRevealDistance <= 0 {
		cfg.Geofence.MaxRevealDistance = defaultMaxRevealDistance
	}
	if cfg.Geofence.MaxNearbyRadius <= 0 {
		cfg.Geofence.MaxNearbyRadius = cfg.Geofence.MaxRevealDistance * 10
	}
	if cfg.Geofence.SessionTTL <= 0 {
		cfg.Geofence.SessionTTL = defaultSessionTTL
	}
	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.PollInterval <= 0 {
		cfg.Feed.PollInterval = defaultPollInterval
	}
	if cfg.Probe == nil {
		cfg.Probe = &ProbeConfig{}
	}
	if cfg.Probe.Timeout <= 0 {
		cfg.Probe.Timeout = defaultProbeTimeout
	}
	if cfg.Probe.Interval <= 0 {
		cfg.Probe.Interval = cfg.Feed.PollInterval
	}
	if cfg.TestRoutes == nil {
		cfg.TestRoutes = &TestRoutesConfig{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = cfg.HTTP.Port
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
