package entities

// Fixture kinds placed by scenarios.
const (
	KindWindow    = "window"
	KindFurniture = "furniture"
)

// Fixture is any non-door object: windows, furniture, counters.
type Fixture struct {
	Kind   string
	Name   string
	Sprite string
}

// NewFixture creates a fixture of the given kind
func NewFixture(kind, name, sprite string) *Fixture {
	return &Fixture{Kind: kind, Name: name, Sprite: sprite}
}

// ObjectKind implements kick.Object
func (f *Fixture) ObjectKind() string { return f.Kind }
