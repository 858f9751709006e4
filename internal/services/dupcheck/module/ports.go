package module

import dom "qayd/internal/services/dupcheck/domain"

// Ports holds the ports exposed by the dupcheck module
type Ports struct {
	Checker dom.CheckerPort
}
