package services

import (
	"os"
	"sync"
	"time"

	"github.com/Netflix/spectator-go"
	"go.opencensus.io/stats/view"
)

// SpectatorExporter forwards opencensus views into a spectator registry.
// Cumulative counts are converted into deltas; distributions become gauges.
type SpectatorExporter struct {
	registry *spectator.Registry

	lock           sync.Mutex
	previousValues map[string]int64
}

func NewSpectatorExporter(registry *spectator.Registry) *SpectatorExporter {
	return &SpectatorExporter{
		previousValues: make(map[string]int64),
		registry:       registry,
	}
}

// StartSpectator starts a registry publishing to atlasAddr and registers an exporter for it.
func StartSpectator(atlasAddr string) (*spectator.Registry, error) {
	registry := spectator.NewRegistry(&spectator.Config{
		Frequency:  5 * time.Second,
		Timeout:    1 * time.Second,
		BatchSize:  10000,
		Uri:        atlasAddr,
		CommonTags: CommonTags(),
	})
	if err := registry.Start(); err != nil {
		return nil, err
	}
	view.RegisterExporter(NewSpectatorExporter(registry))
	return registry, nil
}

func (s *SpectatorExporter) exportDistribution(id *spectator.Id, data *view.DistributionData) {
	key := id.String()
	s.registry.CounterWithId(id.WithStat("count")).Add(data.Count - s.previousValues[key])
	s.previousValues[key] = data.Count
	s.registry.GaugeWithId(id.WithStat("avg")).Set(data.Mean)
	s.registry.GaugeWithId(id.WithStat("max")).Set(data.Max)
	s.registry.GaugeWithId(id.WithStat("min")).Set(data.Min)
}

func (s *SpectatorExporter) ExportView(vd *view.Data) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, row := range vd.Rows {
		tags := make(map[string]string, len(row.Tags))
		for idx := range row.Tags {
			tags[row.Tags[idx].Key.Name()] = row.Tags[idx].Value
		}

		id := s.registry.NewId(vd.View.Name, tags)
		switch v := row.Data.(type) {
		case *view.DistributionData:
			s.exportDistribution(id, v)
		case *view.CountData:
			key := id.String()
			s.registry.CounterWithId(id).Add(v.Value - s.previousValues[key])
			s.previousValues[key] = v.Value
		case *view.SumData:
			s.registry.CounterWithId(id).AddFloat(v.Value)
		case *view.LastValueData:
			s.registry.GaugeWithId(id).Set(v.Value)
		}
	}
}

func addNonEmpty(tags map[string]string, key string, envVar string) {
	if value := os.Getenv(envVar); value != "" {
		tags[key] = value
	}
}

// CommonTags are attached to every metric this process publishes.
func CommonTags() map[string]string {
	commonTags := map[string]string{}
	addNonEmpty(commonTags, "nf.app", "NETFLIX_APP")
	addNonEmpty(commonTags, "nf.asg", "NETFLIX_AUTO_SCALE_GROUP")
	addNonEmpty(commonTags, "nf.cluster", "NETFLIX_CLUSTER")
	addNonEmpty(commonTags, "nf.node", "NETFLIX_INSTANCE_ID")
	addNonEmpty(commonTags, "nf.region", "EC2_REGION")
	addNonEmpty(commonTags, "nf.zone", "EC2_AVAILABILITY_ZONE")
	addNonEmpty(commonTags, "nf.stack", "NETFLIX_STACK")
	return commonTags
}
