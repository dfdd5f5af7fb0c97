package engine

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// PickLitSlots draws count distinct slot indices from [0, totalSlots) by rejection sampling
// Panics when count is outside [0, totalSlots]; a nil rng uses the global source
func PickLitSlots(rng *rand.Rand, count, totalSlots int) mapset.Set[int] {
	if count < 0 || totalSlots < 0 || count > totalSlots {
		panic(fmt.Sprintf("engine: PickLitSlots(count=%d, totalSlots=%d) out of contract", count, totalSlots))
	}

	draw := rand.IntN
	if rng != nil {
		draw = rng.IntN
	}

	slots := mapset.New[int]()
	for slots.Size() < count {
		slots.Put(draw(totalSlots))
	}
	return slots
}

// sortedSlots flattens a slot set into ascending order
func sortedSlots(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(slot int) {
		out = append(out, slot)
	})
	sort.Ints(out)
	return out
}
