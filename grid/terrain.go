package grid

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gridpath/parameter"
)

// Kind is the terrain type of a tile
type Kind uint8

const (
	Normal Kind = iota
	Fire
	Forest
	Sand
	KindCount
)

var kindNames = [KindCount]string{"normal", "fire", "forest", "sand"}

// Glyphs used by FromRows and Rows, '#' marks an unwalkable tile
var kindGlyphs = [KindCount]byte{'.', 'f', 't', 's'}

const wallGlyph = '#'

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Glyph returns the map character for k, '?' when unknown
func (k Kind) Glyph() byte {
	if k < KindCount {
		return kindGlyphs[k]
	}
	return '?'
}

// ParseKind resolves a terrain name case-insensitively
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain kind %q", s)
}

// CostTable maps each terrain kind to its traversal cost
type CostTable [KindCount]float64

// DefaultCosts returns the stock cost table
func DefaultCosts() CostTable {
	return CostTable{
		Normal: parameter.TerrainCostNormal,
		Fire:   parameter.TerrainCostFire,
		Forest: parameter.TerrainCostForest,
		Sand:   parameter.TerrainCostSand,
	}
}

// UniformCosts returns a table where every kind costs c
func UniformCosts(c float64) CostTable {
	return CostTable{c, c, c, c}
}

// Min returns the cheapest entry
func (t CostTable) Min() float64 {
	m := t[0]
	for _, c := range t[1:] {
		if c < m {
			m = c
		}
	}
	return m
}
