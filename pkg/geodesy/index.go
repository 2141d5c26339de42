package geodesy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/rs/zerolog"
)

// Index provides spatial queries over a set of shapes keyed by caller ID.
//
// Shapes are stored by bounding box in an R-tree. A box crossing the
// antimeridian is stored as its two non-wrapping parts, and query boxes are
// split the same way, so searches near ±180° find shapes on both sides.
// Boxes thinner than IndexOptions.Epsilon on any axis (points, meridians,
// parallels) are padded to that size.
//
// An Index is safe for concurrent use.
//
// Example:
//
//	idx := geodesy.NewIndex[geodesy.Coordinate2D](geodesy.DefaultIndexOptions())
//	_ = idx.Insert("harbour", harbourPolygon)
//	ids := idx.Search(viewport)
type Index[C Coordinates[C]] struct {
	rtree   *rtreego.Rtree
	shapes  map[string]indexedShape[C]
	dim     int
	epsilon float64
	log     zerolog.Logger

	mu sync.RWMutex
}

type indexedShape[C Coordinates[C]] struct {
	box   BoundingBox[C]
	parts []*indexEntry
}

// indexEntry is one R-tree leaf. Entries are compared by pointer on delete.
type indexEntry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewIndex creates an empty index.
func NewIndex[C Coordinates[C]](opts IndexOptions) *Index[C] {
	def := DefaultIndexOptions()
	if opts.MinChildren < 1 || opts.MaxChildren < 2*opts.MinChildren {
		opts.MinChildren, opts.MaxChildren = def.MinChildren, def.MaxChildren
	}
	if !(opts.Epsilon > 0) {
		opts.Epsilon = def.Epsilon
	}

	dim := crsOf[C]().Dimension()
	return &Index[C]{
		rtree:   rtreego.NewTree(dim, opts.MinChildren, opts.MaxChildren),
		shapes:  make(map[string]indexedShape[C]),
		dim:     dim,
		epsilon: opts.Epsilon,
		log:     loggerOrNop(opts.Logger).With().Str("component", "index").Str("crs", string(crsOf[C]().ID)).Logger(),
	}
}

// rect converts a non-wrapping box to an R-tree rectangle, padding thin axes.
func (idx *Index[C]) rect(b BoundingBox[C]) (rtreego.Rect, error) {
	origin, extent := b.origin.vec(), b.size.extent

	point := make(rtreego.Point, idx.dim)
	lengths := make([]float64, idx.dim)
	for i := 0; i < idx.dim; i++ {
		point[i] = origin[i]
		lengths[i] = extent[i]
		if lengths[i] < idx.epsilon {
			point[i] -= (idx.epsilon - lengths[i]) / 2
			lengths[i] = idx.epsilon
		}
	}
	return rtreego.NewRect(point, lengths)
}

func (idx *Index[C]) rects(b BoundingBox[C]) ([]rtreego.Rect, error) {
	parts := b.Parts()
	rects := make([]rtreego.Rect, 0, len(parts))
	for _, part := range parts {
		r, err := idx.rect(part)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// Insert adds shape under id, replacing any shape already stored there.
// It fails with ErrEmptyShape when the shape has no points.
func (idx *Index[C]) Insert(id string, shape Boundable[C]) error {
	box, ok := shape.BoundingBox()
	if !ok {
		return fmt.Errorf("index insert %q: %w", id, ErrEmptyShape)
	}

	rects, err := idx.rects(box)
	if err != nil {
		return fmt.Errorf("index insert %q: %w", id, err)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.deleteLocked(id)

	entry := indexedShape[C]{box: box, parts: make([]*indexEntry, len(rects))}
	for i, r := range rects {
		entry.parts[i] = &indexEntry{id: id, rect: r}
		idx.rtree.Insert(entry.parts[i])
	}
	idx.shapes[id] = entry

	idx.log.Debug().Str("id", id).Int("parts", len(rects)).Msg("Indexed shape")
	return nil
}

// Delete removes the shape stored under id. It reports whether one existed.
func (idx *Index[C]) Delete(id string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.deleteLocked(id)
}

// deleteLocked must be called with idx.mu locked.
func (idx *Index[C]) deleteLocked(id string) bool {
	entry, ok := idx.shapes[id]
	if !ok {
		return false
	}
	for _, part := range entry.parts {
		idx.rtree.Delete(part)
	}
	delete(idx.shapes, id)

	idx.log.Debug().Str("id", id).Msg("Removed shape")
	return true
}

// Get returns the bounding box stored under id.
func (idx *Index[C]) Get(id string) (BoundingBox[C], bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entry, ok := idx.shapes[id]
	return entry.box, ok
}

// Search returns the IDs of shapes whose bounding boxes intersect box,
// sorted.
func (idx *Index[C]) Search(box BoundingBox[C]) []string {
	rects, err := idx.rects(box)
	if err != nil {
		idx.log.Debug().Err(err).Msg("Invalid query box")
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, r := range rects {
		for _, s := range idx.rtree.SearchIntersect(r) {
			seen[s.(*indexEntry).id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Nearest returns up to k IDs ordered by distance from p to their boxes.
// Distances are planar in raw axis units and do not wrap across the
// antimeridian.
func (idx *Index[C]) Nearest(p Point[C], k int) []string {
	if k <= 0 {
		return nil
	}

	v := p.vec()
	point := make(rtreego.Point, idx.dim)
	copy(point, v[:idx.dim])

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	// Split shapes own two leaves, so ask for enough to fill k distinct IDs.
	want := min(2*k, idx.rtree.Size())
	ids := make([]string, 0, k)
	seen := make(map[string]struct{}, k)
	for _, s := range idx.rtree.NearestNeighbors(want, point) {
		if s == nil {
			continue
		}
		id := s.(*indexEntry).id
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		if len(ids) == k {
			break
		}
	}
	return ids
}

// Len returns the number of indexed shapes.
func (idx *Index[C]) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.shapes)
}

// Bounds returns the union of all indexed boxes. The boolean is false for an
// empty index.
func (idx *Index[C]) Bounds() (BoundingBox[C], bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	ids := make([]string, 0, len(idx.shapes))
	for id := range idx.shapes {
		ids = append(ids, id)
	}
	// Union on a wrapping axis depends on merge order; keep it stable.
	sort.Strings(ids)

	boxes := make([]BoundingBox[C], len(ids))
	for i, id := range ids {
		boxes[i] = idx.shapes[id].box
	}
	return Union(boxes...)
}
