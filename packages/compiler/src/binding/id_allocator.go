package binding

const idPrefix = "id_"

// IdAllocator generates element ids unique within one compilation unit
type IdAllocator struct {
	names *namePool
}

// NewIdAllocator creates an allocator starting at id_0
func NewIdAllocator() *IdAllocator {
	return &IdAllocator{names: newNamePool()}
}

// Claim records an id already used in the unit's tree. GenerateId never
// returns a claimed id.
func (a *IdAllocator) Claim(id string) {
	a.names.reserve(id)
}

// GenerateId returns the next unclaimed id
func (a *IdAllocator) GenerateId() string {
	return a.names.uniqueName(idPrefix)
}
