package binding

import "fmt"

// namePool hands out names that are unique within one compilation unit
type namePool struct {
	claimedNames map[string]int
	// reserved holds names taken outside the pool.
	reserved map[string]bool
}

func newNamePool() *namePool {
	return &namePool{
		claimedNames: make(map[string]int),
		reserved:     make(map[string]bool),
	}
}

// reserve marks name as taken so uniqueName never returns it
func (p *namePool) reserve(name string) {
	p.reserved[name] = true
}

// uniqueName produces prefix followed by the number of names previously
// claimed with the same prefix, skipping reserved names. The prefix should
// be a constant string that does not end in a digit.
func (p *namePool) uniqueName(prefix string) string {
	for {
		count := p.claimedNames[prefix]
		p.claimedNames[prefix] = count + 1
		name := fmt.Sprintf("%s%d", prefix, count)
		if !p.reserved[name] {
			p.reserved[name] = true
			return name
		}
	}
}
