package module

import dom "qayd/internal/services/search/domain"

// Ports holds the ports exposed by the search module
type Ports struct {
	Searcher dom.SearcherPort
}
