package palette

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// Sentinel errors for palette loading.
var (
	// ErrDuplicateName is returned when two defs or two stylists in one
	// palette file share a name. Names are the file's reference keys.
	ErrDuplicateName = errors.New("duplicate name in palette")

	// ErrUnknownDef is returned when a stylist references a def name that
	// the palette does not declare.
	ErrUnknownDef = errors.New("stylist references unknown def")
)

// Palette indexes a loaded vocabulary by name.
type Palette struct {
	Defs     map[string]vgraph.FeatureDef
	Stylists map[string]vgraph.Stylist
}

// Def returns the feature definition with the given name.
func (p *Palette) Def(name string) (vgraph.FeatureDef, bool) {
	d, ok := p.Defs[name]
	return d, ok
}

// Stylist returns the stylist with the given name.
func (p *Palette) Stylist(name string) (vgraph.Stylist, bool) {
	s, ok := p.Stylists[name]
	return s, ok
}

// paletteFile is the TOML shape of a palette.
type paletteFile struct {
	Defs     []defEntry     `toml:"defs"`
	Stylists []stylistEntry `toml:"stylists"`
}

type defEntry struct {
	Name     string  `toml:"name"`
	MinItems int     `toml:"min-items"`
	MaxItems int     `toml:"max-items"`
	Minimum  float64 `toml:"minimum"`
	Maximum  float64 `toml:"maximum"`
}

type stylistEntry struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Defs    []string `toml:"defs"`
}

// Load parses TOML palette data and declares its vocabulary through b.
// Definitions are created before stylists so stylist entries can reference
// any def in the file regardless of declaration order. On error nothing
// further is declared, but entries created before the failure remain in
// the builder's document (ids are never revoked).
func Load(data []byte, b *vgraph.GraphBuilder) (*Palette, error) {
	var file paletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}

	p := &Palette{
		Defs:     make(map[string]vgraph.FeatureDef, len(file.Defs)),
		Stylists: make(map[string]vgraph.Stylist, len(file.Stylists)),
	}

	for _, e := range file.Defs {
		if _, exists := p.Defs[e.Name]; exists {
			return nil, fmt.Errorf("%w: def %q", ErrDuplicateName, e.Name)
		}
		def, err := b.CreateFeatureDef(e.Name, e.MinItems, e.MaxItems, e.Minimum, e.Maximum)
		if err != nil {
			return nil, fmt.Errorf("def %q: %w", e.Name, err)
		}
		p.Defs[e.Name] = def
	}

	for _, e := range file.Stylists {
		if _, exists := p.Stylists[e.Name]; exists {
			return nil, fmt.Errorf("%w: stylist %q", ErrDuplicateName, e.Name)
		}
		defs := make([]vgraph.FeatureDef, len(e.Defs))
		for i, name := range e.Defs {
			def, ok := p.Defs[name]
			if !ok {
				return nil, fmt.Errorf("%w: stylist %q references %q", ErrUnknownDef, e.Name, name)
			}
			defs[i] = def
		}
		p.Stylists[e.Name] = b.CreateStylist(e.Name, e.Version, defs)
	}

	return p, nil
}

// LoadFile reads a palette TOML file at path and declares it through b.
func LoadFile(path string, b *vgraph.GraphBuilder) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Load(data, b)
}
