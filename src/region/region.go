package region

import (
	"fmt"

	"github.com/bradbev/flatrect/src/geom"
	"github.com/jinzhu/copier"
	"golang.org/x/exp/slices"
)

// Region is a named area of the image plane, for example a saved selection
// or the bounds of a tile.
type Region struct {
	Name   string    `json:"name" yaml:"name"`
	Bounds geom.Rect `json:"bounds" yaml:"bounds"`
}

// Layout is a named set of regions that are stored and moved together.
type Layout struct {
	Name    string   `json:"name" yaml:"name"`
	Regions []Region `json:"regions" yaml:"regions"`
}

// PostLoad is run on every freshly decoded Layout.  It puts every region into
// canonical form and rejects layouts that can't be addressed by name.
func (l *Layout) PostLoad() error {
	seen := map[string]struct{}{}
	for i := range l.Regions {
		r := &l.Regions[i]
		if r.Name == "" {
			return fmt.Errorf("region %d in layout %q has no name", i, l.Name)
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("duplicate region %q in layout %q", r.Name, l.Name)
		}
		seen[r.Name] = struct{}{}
		r.Bounds = r.Bounds.Canon()
	}
	return nil
}

func (l *Layout) Find(name string) (Region, bool) {
	i := slices.IndexFunc(l.Regions, func(r Region) bool { return r.Name == name })
	if i < 0 {
		return Region{}, false
	}
	return l.Regions[i], true
}

// Names returns the region names in sorted order.
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.Regions))
	for _, r := range l.Regions {
		names = append(names, r.Name)
	}
	slices.Sort(names)
	return names
}

// Bounds is the union of all regions, folded in layout order.  Regions that
// all share one rotation give a rectangle with that rotation, anything else
// gives an axis aligned one.  An empty layout has zero bounds.
func (l *Layout) Bounds() geom.Rect {
	if len(l.Regions) == 0 {
		return geom.Rect{}
	}
	bounds := l.Regions[0].Bounds
	for _, r := range l.Regions[1:] {
		bounds = bounds.Union(r.Bounds)
	}
	return bounds
}

// Rotate turns the whole layout by degrees about the center of its bounds.
func (l *Layout) Rotate(degrees float64) *Layout {
	pivot := l.Bounds().Center()
	return l.transform(func(r geom.Rect) geom.Rect {
		return r.RotateAround(degrees, pivot)
	})
}

func (l *Layout) Scale(factor float64) *Layout {
	return l.transform(func(r geom.Rect) geom.Rect {
		return r.Times(factor)
	})
}

func (l *Layout) Translate(delta geom.Point) *Layout {
	return l.transform(func(r geom.Rect) geom.Rect {
		return r.Translate(delta)
	})
}

func (l *Layout) transform(fn func(geom.Rect) geom.Rect) *Layout {
	out := l.Clone()
	for i := range out.Regions {
		out.Regions[i].Bounds = fn(out.Regions[i].Bounds)
	}
	return out
}

// Clone returns a deep copy, edits to it never show up in l.
func (l *Layout) Clone() *Layout {
	out := &Layout{}
	if err := copier.CopyWithOption(out, l, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("copying layout %q: %v", l.Name, err)
	}
	return out
}
