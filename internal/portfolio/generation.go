package portfolio

import "sync"

// Generations hands out increasing request numbers per section so a caller
// can drop a response that was overtaken by a newer request for the same
// section. The zero value is ready to use.
type Generations struct {
	mu     sync.Mutex
	latest map[Section]uint64
}

// Next issues a new generation for s, invalidating all earlier ones.
func (g *Generations) Next(s Section) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.latest == nil {
		g.latest = map[Section]uint64{}
	}
	g.latest[s]++
	return g.latest[s]
}

// IsCurrent reports whether gen is the latest generation issued for s.
func (g *Generations) IsCurrent(s Section, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.latest[s] == gen
}
