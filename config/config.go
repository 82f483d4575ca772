package config

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ExecutorIDFlagName        = "executor-id"
	HostnameFlagName          = "hostname"
	ControllerAddressFlagName = "controller-address"
	IngestURLFlagName         = "ingest-url"
	FlavorFlagName            = "flavor"
	DevelopmentModeFlagName   = "development-mode"
	LabelsFlagName            = "labels"
	AllowedFunctionsFlagName  = "allowed-functions"

	ReportIntervalFlagName   = "report-interval"
	ReportTimeoutFlagName    = "report-timeout"
	ReportMinSpacingFlagName = "report-min-spacing"

	ReconnectInitialBackoffFlagName = "reconnect-initial-backoff"
	ReconnectMaxBackoffFlagName     = "reconnect-max-backoff"
	DesiredStateQueueSizeFlagName   = "desired-state-queue-size"
	FinishedTaskTTLFlagName         = "finished-task-ttl"

	OutcomeTransportFlagName      = "outcome-transport"
	OutcomeConnectTimeoutFlagName = "outcome-connect-timeout"
	OutcomeReadTimeoutFlagName    = "outcome-read-timeout"
	OutcomeMaxAttemptsFlagName    = "outcome-max-attempts"
	OutcomeRetryBackoffFlagName   = "outcome-retry-backoff"

	MaxConcurrentTasksFlagName    = "max-concurrent-tasks"
	TaskCommandFlagName           = "task-command"
	FunctionExecutorCmdFlagName   = "function-executor-command"
	FunctionExecutorGraceFlagName = "function-executor-stop-grace"
	StateDirFlagName              = "state-dir"
	DiskPathFlagName              = "disk-path"

	DebugFlagName        = "debug"
	LogJSONFlagName      = "log-json"
	JournaldFlagName     = "journald"
	DebugAddressFlagName = "debug-address"
	ZipkinURLFlagName    = "zipkin"
	AtlasAddrFlagName    = "atlas-addr"
)

const (
	OutcomeTransportHTTP = "http"
	OutcomeTransportGRPC = "grpc"
)

const (
	defaultReportInterval          = 5 * time.Second
	defaultReportTimeout           = 5 * time.Second
	defaultReportMinSpacing        = 100 * time.Millisecond
	defaultReconnectInitialBackoff = time.Second
	defaultReconnectMaxBackoff     = 30 * time.Second
	defaultDesiredStateQueueSize   = 4
	defaultFinishedTaskTTL         = 10 * time.Minute
	defaultOutcomeConnectTimeout   = 5 * time.Second
	defaultOutcomeReadTimeout      = 5 * time.Minute
	defaultOutcomeMaxAttempts      = 5
	defaultOutcomeRetryBackoff     = 5 * time.Second
	defaultMaxConcurrentTasks      = 64
	defaultFunctionExecutorGrace   = 10 * time.Second
	defaultStateDir                = "/var/lib/titus-fn-executor"
)

// Config is the fully resolved configuration of the executor agent.
type Config struct { // nolint: maligned
	ExecutorID        string
	Hostname          string
	ControllerAddress string
	IngestURL         string
	Flavor            string
	DevelopmentMode   bool
	Labels            map[string]string
	AllowedFunctions  []string

	ReportInterval   time.Duration
	ReportTimeout    time.Duration
	ReportMinSpacing time.Duration

	ReconnectInitialBackoff time.Duration
	ReconnectMaxBackoff     time.Duration
	DesiredStateQueueSize   int
	FinishedTaskTTL         time.Duration

	OutcomeTransport      string
	OutcomeConnectTimeout time.Duration
	OutcomeReadTimeout    time.Duration
	OutcomeMaxAttempts    int
	OutcomeRetryBackoff   time.Duration

	MaxConcurrentTasks        int64
	TaskCommand               []string
	FunctionExecutorCommand   []string
	FunctionExecutorStopGrace time.Duration
	StateDir                  string
	DiskPath                  string

	Debug        bool
	LogJSON      bool
	Journald     bool
	DebugAddress string
	ZipkinURL    string
	AtlasAddr    string
}

// NewFlagSet returns the flags understood by the agent, with their defaults.
func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("titus-fn-executor", pflag.ContinueOnError)

	flags.String(ExecutorIDFlagName, "", "Executor ID, a random one is generated when empty")
	flags.String(HostnameFlagName, "", "Hostname to report, defaults to os.Hostname()")
	flags.String(ControllerAddressFlagName, "localhost:8901", "gRPC address of the controller")
	flags.String(IngestURLFlagName, "http://localhost:8900", "Base URL of the controller's HTTP ingest endpoint")
	flags.String(FlavorFlagName, "oss", "Executor flavor (oss or platform)")
	flags.Bool(DevelopmentModeFlagName, false, "Report the executor as running in development mode")
	flags.StringSlice(LabelsFlagName, nil, "Labels reported with executor state, as key=value")
	flags.StringSlice(AllowedFunctionsFlagName, nil, "Functions this executor may run, as namespace:graph:function[:version]; empty parts are wildcards")

	flags.Duration(ReportIntervalFlagName, defaultReportInterval, "How often to report executor state")
	flags.Duration(ReportTimeoutFlagName, defaultReportTimeout, "Timeout of a single state report")
	flags.Duration(ReportMinSpacingFlagName, defaultReportMinSpacing, "Minimum spacing between triggered state reports")

	flags.Duration(ReconnectInitialBackoffFlagName, defaultReconnectInitialBackoff, "Initial backoff before reopening the desired state stream")
	flags.Duration(ReconnectMaxBackoffFlagName, defaultReconnectMaxBackoff, "Maximum backoff before reopening the desired state stream")
	flags.Int(DesiredStateQueueSizeFlagName, defaultDesiredStateQueueSize, "Desired state snapshots buffered between the stream and the reconciler")
	flags.Duration(FinishedTaskTTLFlagName, defaultFinishedTaskTTL, "How long finished task IDs are remembered to avoid re-dispatch")

	flags.String(OutcomeTransportFlagName, OutcomeTransportHTTP, "How task outcomes are reported (http or grpc)")
	flags.Duration(OutcomeConnectTimeoutFlagName, defaultOutcomeConnectTimeout, "Connect and write timeout for outcome uploads")
	flags.Duration(OutcomeReadTimeoutFlagName, defaultOutcomeReadTimeout, "Read timeout for outcome uploads")
	flags.Int(OutcomeMaxAttemptsFlagName, defaultOutcomeMaxAttempts, "Attempts to report a task outcome before giving up")
	flags.Duration(OutcomeRetryBackoffFlagName, defaultOutcomeRetryBackoff, "Initial backoff between outcome report attempts")

	flags.Int64(MaxConcurrentTasksFlagName, defaultMaxConcurrentTasks, "Maximum number of tasks running at once")
	flags.StringSlice(TaskCommandFlagName, nil, "Command used to run a task")
	flags.StringSlice(FunctionExecutorCmdFlagName, nil, "Command used to start a function executor")
	flags.Duration(FunctionExecutorGraceFlagName, defaultFunctionExecutorGrace, "How long a function executor has to exit after SIGTERM")
	flags.String(StateDirFlagName, defaultStateDir, "Directory for function executor spec files")
	flags.String(DiskPathFlagName, "/", "Filesystem path whose capacity is reported as disk")

	flags.Bool(DebugFlagName, false, "Turn on debug logging")
	flags.Bool(LogJSONFlagName, false, "Log in JSON")
	flags.Bool(JournaldFlagName, false, "Log exclusively to Journald")
	flags.String(DebugAddressFlagName, "", "Address for zpages, pprof")
	flags.String(ZipkinURLFlagName, "", "URL To send Zipkin spans to")
	flags.String(AtlasAddrFlagName, "", "Atlas aggregator address")

	return flags
}

func bindVariable(v *viper.Viper, key, env string) {
	if err := v.BindEnv(key, env); err != nil {
		panic(err)
	}
}

// BindEnv maps the environment variables the agent honours onto their flags.
func BindEnv(v *viper.Viper) {
	bindVariable(v, ExecutorIDFlagName, "EXECUTOR_ID")
	bindVariable(v, ControllerAddressFlagName, "CONTROLLER_ADDRESS")
	bindVariable(v, IngestURLFlagName, "INGEST_URL")
	bindVariable(v, ZipkinURLFlagName, "ZIPKIN")
	bindVariable(v, DebugAddressFlagName, "DEBUG_ADDRESS")
	bindVariable(v, AtlasAddrFlagName, "ATLAS_ADDR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// FromViper resolves and validates the configuration.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ExecutorID:        v.GetString(ExecutorIDFlagName),
		Hostname:          v.GetString(HostnameFlagName),
		ControllerAddress: v.GetString(ControllerAddressFlagName),
		IngestURL:         strings.TrimSuffix(v.GetString(IngestURLFlagName), "/"),
		Flavor:            v.GetString(FlavorFlagName),
		DevelopmentMode:   v.GetBool(DevelopmentModeFlagName),
		AllowedFunctions:  v.GetStringSlice(AllowedFunctionsFlagName),

		ReportInterval:   v.GetDuration(ReportIntervalFlagName),
		ReportTimeout:    v.GetDuration(ReportTimeoutFlagName),
		ReportMinSpacing: v.GetDuration(ReportMinSpacingFlagName),

		ReconnectInitialBackoff: v.GetDuration(ReconnectInitialBackoffFlagName),
		ReconnectMaxBackoff:     v.GetDuration(ReconnectMaxBackoffFlagName),
		DesiredStateQueueSize:   v.GetInt(DesiredStateQueueSizeFlagName),
		FinishedTaskTTL:         v.GetDuration(FinishedTaskTTLFlagName),

		OutcomeTransport:      v.GetString(OutcomeTransportFlagName),
		OutcomeConnectTimeout: v.GetDuration(OutcomeConnectTimeoutFlagName),
		OutcomeReadTimeout:    v.GetDuration(OutcomeReadTimeoutFlagName),
		OutcomeMaxAttempts:    v.GetInt(OutcomeMaxAttemptsFlagName),
		OutcomeRetryBackoff:   v.GetDuration(OutcomeRetryBackoffFlagName),

		MaxConcurrentTasks:        v.GetInt64(MaxConcurrentTasksFlagName),
		TaskCommand:               v.GetStringSlice(TaskCommandFlagName),
		FunctionExecutorCommand:   v.GetStringSlice(FunctionExecutorCmdFlagName),
		FunctionExecutorStopGrace: v.GetDuration(FunctionExecutorGraceFlagName),
		StateDir:                  v.GetString(StateDirFlagName),
		DiskPath:                  v.GetString(DiskPathFlagName),

		Debug:        v.GetBool(DebugFlagName),
		LogJSON:      v.GetBool(LogJSONFlagName),
		Journald:     v.GetBool(JournaldFlagName),
		DebugAddress: v.GetString(DebugAddressFlagName),
		ZipkinURL:    v.GetString(ZipkinURLFlagName),
		AtlasAddr:    v.GetString(AtlasAddrFlagName),
	}

	labels, err := parseLabels(v.GetStringSlice(LabelsFlagName))
	if err != nil {
		return nil, err
	}
	cfg.Labels = labels

	if cfg.ExecutorID == "" {
		cfg.ExecutorID = uuid.New().String()
	}
	if cfg.Hostname == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, errors.Wrap(err, "Unable to fetch hostname")
		}
		cfg.Hostname = hostname
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns every problem with the configuration at once.
func (cfg *Config) Validate() error {
	var result *multierror.Error
	if cfg.ControllerAddress == "" {
		result = multierror.Append(result, errors.New("controller address must be set"))
	}
	if cfg.IngestURL == "" && cfg.OutcomeTransport == OutcomeTransportHTTP {
		result = multierror.Append(result, errors.New("ingest URL must be set when reporting outcomes over http"))
	}
	if cfg.OutcomeTransport != OutcomeTransportHTTP && cfg.OutcomeTransport != OutcomeTransportGRPC {
		result = multierror.Append(result, errors.Errorf("unknown outcome transport %q", cfg.OutcomeTransport))
	}
	if _, err := cfg.ExecutorFlavor(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := cfg.AllowedFunctionList(); err != nil {
		result = multierror.Append(result, err)
	}
	if cfg.ReportInterval <= 0 {
		result = multierror.Append(result, errors.New("report interval must be positive"))
	}
	if cfg.ReconnectInitialBackoff <= 0 || cfg.ReconnectMaxBackoff < cfg.ReconnectInitialBackoff {
		result = multierror.Append(result, errors.New("reconnect backoff must be positive and max must not be lower than initial"))
	}
	if cfg.DesiredStateQueueSize < 1 {
		result = multierror.Append(result, errors.New("desired state queue size must be at least 1"))
	}
	if cfg.OutcomeMaxAttempts < 1 {
		result = multierror.Append(result, errors.New("outcome max attempts must be at least 1"))
	}
	if cfg.MaxConcurrentTasks < 1 {
		result = multierror.Append(result, errors.New("max concurrent tasks must be at least 1"))
	}
	return result.ErrorOrNil()
}

// GenerateConfiguration parses args the same way the agent binary does. Used by tests.
func GenerateConfiguration(args []string) (*Config, error) {
	flags := NewFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	BindEnv(v)
	return FromViper(v)
}

func parseLabels(pairs []string) (map[string]string, error) {
	labels := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			return nil, errors.Errorf("label %q must be key=value", pair)
		}
		labels[pair[:idx]] = pair[idx+1:]
	}
	return labels, nil
}
