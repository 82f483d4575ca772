package config

import (
	"strings"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// ExecutorFlavor returns the configured flavor as its wire value
func (cfg *Config) ExecutorFlavor() (executorapi.ExecutorFlavor, error) {
	flavor, err := executorapi.ParseExecutorFlavor(cfg.Flavor)
	if err != nil {
		return executorapi.ExecutorFlavor_EXECUTOR_FLAVOR_UNKNOWN, errors.Wrap(err, "invalid flavor")
	}
	return flavor, nil
}

// AllowedFunctionList parses the allowed function patterns. An empty part is a wildcard.
func (cfg *Config) AllowedFunctionList() ([]*executorapi.AllowedFunction, error) {
	ret := make([]*executorapi.AllowedFunction, 0, len(cfg.AllowedFunctions))
	for _, pattern := range cfg.AllowedFunctions {
		parts := strings.Split(pattern, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, errors.Errorf("allowed function %q must be namespace:graph:function[:version]", pattern)
		}
		af := &executorapi.AllowedFunction{
			Namespace:    optional(parts[0]),
			GraphName:    optional(parts[1]),
			FunctionName: optional(parts[2]),
		}
		if len(parts) == 4 {
			af.GraphVersion = optional(parts[3])
		}
		ret = append(ret, af)
	}
	return ret, nil
}

func optional(s string) *string {
	if s == "" || s == "*" {
		return nil
	}
	return proto.String(s)
}
