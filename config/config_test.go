package config

import (
	"testing"
	"time"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func GetDefaultConfiguration(t *testing.T, args []string) *Config {
	cfg, err := GenerateConfiguration(args)
	require.NoError(t, err)

	return cfg
}

func TestDefaultDurations(t *testing.T) {
	cfg := GetDefaultConfiguration(t, nil)

	assert.Equal(t, defaultReportInterval, cfg.ReportInterval)
	assert.Equal(t, defaultOutcomeConnectTimeout, cfg.OutcomeConnectTimeout)
	assert.Equal(t, defaultOutcomeReadTimeout, cfg.OutcomeReadTimeout)
	assert.Equal(t, defaultReconnectInitialBackoff, cfg.ReconnectInitialBackoff)
	assert.Equal(t, OutcomeTransportHTTP, cfg.OutcomeTransport)
}

func TestGeneratedExecutorID(t *testing.T) {
	a := GetDefaultConfiguration(t, nil)
	b := GetDefaultConfiguration(t, nil)
	assert.NotEmpty(t, a.ExecutorID)
	assert.NotEqual(t, a.ExecutorID, b.ExecutorID)
	assert.NotEmpty(t, a.Hostname)
}

func TestFlags(t *testing.T) {
	cfg := GetDefaultConfiguration(t, []string{
		"--executor-id", "exec-1",
		"--ingest-url", "http://controller:8900/",
		"--labels", "zone=us-east-1a,os=linux",
		"--allowed-functions", "ns:graph:fn,ns2::fn2:v3",
		"--report-interval", "1s",
		"--flavor", "platform",
	})

	assert.Equal(t, "exec-1", cfg.ExecutorID)
	assert.Equal(t, "http://controller:8900", cfg.IngestURL)
	assert.Equal(t, map[string]string{"zone": "us-east-1a", "os": "linux"}, cfg.Labels)
	assert.Equal(t, time.Second, cfg.ReportInterval)

	flavor, err := cfg.ExecutorFlavor()
	require.NoError(t, err)
	assert.Equal(t, executorapi.ExecutorFlavor_EXECUTOR_FLAVOR_PLATFORM, flavor)

	allowed, err := cfg.AllowedFunctionList()
	require.NoError(t, err)
	require.Len(t, allowed, 2)
	assert.True(t, allowed[0].Matches("ns", "graph", "fn", "any"))
	assert.Nil(t, allowed[1].GraphName)
	assert.True(t, allowed[1].Matches("ns2", "whatever", "fn2", "v3"))
	assert.False(t, allowed[1].Matches("ns2", "whatever", "fn2", "v4"))
}

func TestValidationCollectsErrors(t *testing.T) {
	_, err := GenerateConfiguration([]string{
		"--outcome-transport", "carrier-pigeon",
		"--desired-state-queue-size", "0",
		"--labels", "novalue",
	})
	assert.Error(t, err)

	_, err = GenerateConfiguration([]string{
		"--outcome-transport", "carrier-pigeon",
		"--desired-state-queue-size", "0",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
	assert.Contains(t, err.Error(), "queue size")
}

func TestBadAllowedFunction(t *testing.T) {
	_, err := GenerateConfiguration([]string{"--allowed-functions", "justone"})
	assert.Error(t, err)
}
