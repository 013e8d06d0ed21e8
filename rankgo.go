package rankgo

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rankgo/cuckoo"
	"github.com/hupe1980/rankgo/ranking"
)

// Registry is an indexed registry of scored identifiers partitioned into a
// fixed set of categories.
//
// It composes two cuckoo hash indexes (identifier -> category and
// identifier -> slot), one ranking tree per category, and one bitmap of
// live slots per category. Identifier resolution is O(1); every score
// change is an O(log n) remove of the stale ranking entry followed by an
// O(log n) insert of the fresh one.
//
// Scores are supplied by the caller; the registry never computes them.
// A Registry is not safe for concurrent use.
type Registry struct {
	categoryMap *cuckoo.Map
	slotMap     *cuckoo.Map
	trees       []*ranking.Tree
	members     []*roaring.Bitmap
	scores      []int64 // last applied score, indexed by slot
	nextSlot    int32

	logger  *Logger
	metrics MetricsCollector
}

// New creates a Registry with categories numbered 0 through
// numCategories-1.
func New(numCategories int, optFns ...Option) (*Registry, error) {
	if numCategories < 1 {
		return nil, ErrInvalidCategoryCount
	}

	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		initialCapacity:  cuckoo.DefaultCapacity,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	trees := make([]*ranking.Tree, numCategories)
	members := make([]*roaring.Bitmap, numCategories)
	for i := range trees {
		trees[i] = ranking.NewTree()
		members[i] = roaring.New()
	}

	return &Registry{
		categoryMap: cuckoo.NewWithCapacity(opts.initialCapacity),
		slotMap:     cuckoo.NewWithCapacity(opts.initialCapacity),
		trees:       trees,
		members:     members,
		logger:      opts.logger,
		metrics:     opts.metricsCollector,
	}, nil
}

// Categories returns the number of configured categories.
func (r *Registry) Categories() int {
	return len(r.trees)
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return int(r.nextSlot)
}

// Register adds id to the given category with an initial score and returns
// the slot assigned to it. It fails with ErrDuplicateID if id is already
// registered and with ErrUnknownCategory if category is out of range.
func (r *Registry) Register(id string, category int, score int64) (int32, error) {
	start := time.Now()
	slot, err := r.register(id, category, score)
	r.metrics.RecordRegister(time.Since(start), err)
	return slot, err
}

func (r *Registry) register(id string, category int, score int64) (int32, error) {
	if category < 0 || category >= len(r.trees) {
		return 0, &ErrUnknownCategory{Category: category}
	}
	if r.categoryMap.Contains(id) {
		return 0, ErrDuplicateID
	}

	resizesBefore := r.categoryMap.Resizes() + r.slotMap.Resizes()

	slot := r.nextSlot
	r.categoryMap.Put(id, int32(category))
	r.slotMap.Put(id, slot)
	r.scores = append(r.scores, score)
	r.trees[category].Insert(ranking.Entry{Slot: slot, Score: score, ID: id})
	r.members[category].Add(uint32(slot))
	r.nextSlot++

	if r.categoryMap.Resizes()+r.slotMap.Resizes() > resizesBefore {
		r.logger.Debug("identifier index resized",
			"category_capacity", r.categoryMap.Capacity(),
			"slot_capacity", r.slotMap.Capacity(),
			"len", r.nextSlot,
		)
	}

	r.logger.Debug("registered",
		"id", id,
		"category", category,
		"slot", slot,
	)

	return slot, nil
}

// Category returns the category id belongs to.
func (r *Registry) Category(id string) (int, bool) {
	v, ok := r.categoryMap.Lookup(id)
	return int(v), ok
}

// Slot returns the slot assigned to id.
func (r *Registry) Slot(id string) (int32, bool) {
	return r.slotMap.Lookup(id)
}

// Score returns the last score applied to id.
func (r *Registry) Score(id string) (int64, bool) {
	slot, ok := r.slotMap.Lookup(id)
	if !ok {
		return 0, false
	}
	return r.scores[slot], true
}

// SetScore replaces id's score, repositioning its ranking entry: the stale
// entry is removed from the category tree and a fresh entry with the same
// slot and identifier is inserted.
func (r *Registry) SetScore(id string, score int64) error {
	start := time.Now()
	err := r.setScore(id, score)
	r.metrics.RecordSetScore(time.Since(start), err)
	return err
}

func (r *Registry) setScore(id string, score int64) error {
	category, ok := r.categoryMap.Lookup(id)
	if !ok {
		return ErrNotFound
	}
	slot, _ := r.slotMap.Lookup(id)

	tree := r.trees[category]
	tree.Remove(ranking.Entry{Slot: slot, Score: r.scores[slot], ID: id})
	r.scores[slot] = score
	tree.Insert(ranking.Entry{Slot: slot, Score: score, ID: id})

	return nil
}

// Reassign moves id to newCategory, keeping its score. Rescoring after a
// move is the caller's follow-up via SetScore.
func (r *Registry) Reassign(id string, newCategory int) error {
	start := time.Now()
	err := r.reassign(id, newCategory)
	r.metrics.RecordReassign(time.Since(start), err)
	return err
}

func (r *Registry) reassign(id string, newCategory int) error {
	if newCategory < 0 || newCategory >= len(r.trees) {
		return &ErrUnknownCategory{Category: newCategory}
	}
	oldCategory, ok := r.categoryMap.Lookup(id)
	if !ok {
		return ErrNotFound
	}
	if int(oldCategory) == newCategory {
		return nil
	}
	slot, _ := r.slotMap.Lookup(id)

	entry := ranking.Entry{Slot: slot, Score: r.scores[slot], ID: id}
	r.trees[oldCategory].Remove(entry)
	r.members[oldCategory].Remove(uint32(slot))
	r.categoryMap.Put(id, int32(newCategory))
	r.trees[newCategory].Insert(entry)
	r.members[newCategory].Add(uint32(slot))

	r.logger.Debug("reassigned",
		"id", id,
		"from", oldCategory,
		"to", newCategory,
	)

	return nil
}

// TopK returns up to k entries of the category in presentation order:
// score descending, ties by identifier ascending.
func (r *Registry) TopK(category, k int) ([]ranking.Entry, error) {
	start := time.Now()
	entries, err := r.topK(category, k)
	r.metrics.RecordTopK(k, time.Since(start), err)
	return entries, err
}

func (r *Registry) topK(category, k int) ([]ranking.Entry, error) {
	if category < 0 || category >= len(r.trees) {
		return nil, &ErrUnknownCategory{Category: category}
	}
	if k < 1 {
		return nil, ErrInvalidK
	}

	entries := make([]ranking.Entry, 0, min(k, r.trees[category].Len()))
	it := r.trees[category].Descending()
	for len(entries) < k {
		e, ok := it.Next()
		if !ok {
			break
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CategorySize returns the number of identifiers in the category.
func (r *Registry) CategorySize(category int) (int, error) {
	if category < 0 || category >= len(r.trees) {
		return 0, &ErrUnknownCategory{Category: category}
	}
	return int(r.members[category].GetCardinality()), nil
}

// MemberSlots returns a copy of the set of live slots in the category.
func (r *Registry) MemberSlots(category int) (*roaring.Bitmap, error) {
	if category < 0 || category >= len(r.trees) {
		return nil, &ErrUnknownCategory{Category: category}
	}
	return r.members[category].Clone(), nil
}
