package converter

import (
	"maps"
	"strconv"

	"github.com/zerfoo/zcaffe/pkg/caffe"
)

// hideSuffix marks the earlier productions of a tensor name that is produced
// more than once. Only the last production keeps the bare name.
const hideSuffix = "_hide_"

// Usage is the number of times each tensor name is produced, counting
// declared inputs and every layer top.
type Usage struct {
	total map[string]int
	order []string
}

// CountProductions scans declared inputs, then every layer's tops.
func CountProductions(inputs []string, layers []*caffe.Layer) *Usage {
	u := &Usage{total: make(map[string]int)}
	for _, name := range inputs {
		u.add(name)
	}
	for _, layer := range layers {
		for _, top := range layer.Tops {
			u.add(top)
		}
	}
	return u
}

func (u *Usage) add(name string) {
	if _, ok := u.total[name]; !ok {
		u.order = append(u.order, name)
	}
	u.total[name]++
}

// Total returns how many times name is produced.
func (u *Usage) Total(name string) int {
	return u.total[name]
}

// Names returns every produced name in order of first production.
func (u *Usage) Names() []string {
	return u.order
}

// Resolver returns a fresh name resolver seeded with the totals.
func (u *Usage) Resolver() *Resolver {
	return &Resolver{remaining: maps.Clone(u.total)}
}

// Resolver hands out the graph name of each production in order.
type Resolver struct {
	remaining map[string]int
}

// Resolve returns the graph name for the next production of raw. A name
// produced N > 1 times resolves to raw_hide_(N-1), ..., raw_hide_1 and
// finally to raw itself.
func (r *Resolver) Resolve(raw string) string {
	if r.remaining[raw] <= 1 {
		return raw
	}
	r.remaining[raw]--
	return raw + hideSuffix + strconv.Itoa(r.remaining[raw])
}

// Remaining returns a snapshot of the remaining production counters.
func (r *Resolver) Remaining() map[string]int {
	return maps.Clone(r.remaining)
}
