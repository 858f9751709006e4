package module

import dom "qayd/internal/services/ingest/domain"

// Ports holds the ports exposed by the ingest module
type Ports struct {
	Runner dom.RunnerPort
}
