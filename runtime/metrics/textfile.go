package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps everything g gathers to path in the node_exporter
// textfile collector format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return errors.New("metrics textfile path is empty")
	}
	if g == nil {
		return errors.New("prometheus gatherer is nil")
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
