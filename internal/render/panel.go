package render

import "sync"

// MemoryPanel is a recording implementation of domain.SearchSurface:
// the results container of one search widget. Panels start hidden and
// empty, the widget's idle state. Access is synchronized because query
// completions land on timer goroutines.
type MemoryPanel struct {
	mutex  sync.RWMutex
	html   string
	hidden bool
}

// NewMemoryPanel creates an idle results panel.
func NewMemoryPanel() *MemoryPanel {
	return &MemoryPanel{hidden: true}
}

func (p *MemoryPanel) SetHTML(html string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.html = html
}

func (p *MemoryPanel) HTML() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.html
}

func (p *MemoryPanel) SetHidden(hidden bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.hidden = hidden
}

func (p *MemoryPanel) Hidden() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.hidden
}
