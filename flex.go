package tuicore

import "sort"

// flexItem is one active (non-absolute) child's sizing state during
// distribution, grounded on the donor's arena.go distributeFlex pass,
// generalized to deterministic-remainder grow/shrink rules.
type flexItem struct {
	index      int // original child index, tiebreaker for remainder order
	basis      int // pre-distribution main-axis size
	grow       float64
	shrink     float64
	maxMain    int // 0 = unbounded
	minMain    int // floor a shrinking item never drops below
	final      int
}

// distributeGrow distributes extra main-axis space among items proportional
// to FlexGrow, with the leftover-cell remainder assigned one cell at a time
// to items sorted by (fractional share desc, index asc) — the deterministic
// tie-break mandated by §4.1. Items hitting their MaxWidth/MaxHeight stop
// absorbing further growth and their unconsumed share is redistributed in a
// second pass, matching the donor's clamp-then-redistribute loop.
func distributeGrow(items []flexItem, extra int) {
	for i := range items {
		items[i].final = items[i].basis
	}
	if extra <= 0 {
		return
	}
	remaining := extra
	// Top up items already short of their own min before any proportional
	// growth runs, in insertion order, per §4.1 step 3 ("leftover space is
	// used to top up items that have not yet reached min").
	for i := range items {
		if remaining <= 0 {
			break
		}
		if need := items[i].minMain - items[i].final; need > 0 {
			if need > remaining {
				need = remaining
			}
			items[i].final += need
			remaining -= need
		}
	}
	if remaining <= 0 {
		return
	}
	active := make([]int, 0, len(items))
	for i, it := range items {
		if it.grow > 0 {
			active = append(active, i)
		}
	}
	for pass := 0; pass < len(items)+1 && remaining > 0 && len(active) > 0; pass++ {
		totalGrow := 0.0
		for _, i := range active {
			totalGrow += items[i].grow
		}
		if totalGrow <= 0 {
			break
		}
		type share struct {
			idx  int
			raw  float64
			base int
			frac float64
		}
		shares := make([]share, len(active))
		budget := remaining
		for si, i := range active {
			raw := float64(budget) * items[i].grow / totalGrow
			base := int(raw)
			shares[si] = share{idx: i, raw: raw, base: base, frac: raw - float64(base)}
		}
		assigned := 0
		for _, s := range shares {
			assigned += s.base
		}
		leftover := remaining - assigned
		sort.SliceStable(shares, func(a, b int) bool {
			if shares[a].frac != shares[b].frac {
				return shares[a].frac > shares[b].frac
			}
			return items[shares[a].idx].index < items[shares[b].idx].index
		})
		for k := 0; k < leftover && k < len(shares); k++ {
			shares[k].base++
		}

		clampedAny := false
		var stillActive []int
		grantedThisPass := 0
		for _, s := range shares {
			it := &items[s.idx]
			grant := s.base
			newFinal := it.final + grant
			if it.maxMain > 0 && newFinal > it.maxMain {
				grant = it.maxMain - it.final
				if grant < 0 {
					grant = 0
				}
				clampedAny = true
			} else {
				stillActive = append(stillActive, s.idx)
			}
			it.final += grant
			grantedThisPass += grant
		}
		remaining -= grantedThisPass
		if !clampedAny {
			break
		}
		active = stillActive
	}
}

// distributeShrink scales each item's reduction proportional to
// shrink*basis (the CSS flex-shrink weighting), flooring remainder cells
// onto items sorted by (fractional share desc, index asc), matching the
// grow pass's tie-break for symmetry.
func distributeShrink(items []flexItem, deficit int) {
	for i := range items {
		items[i].final = items[i].basis
	}
	if deficit <= 0 {
		return
	}
	remaining := deficit
	for pass := 0; pass < len(items)+1 && remaining > 0; pass++ {
		totalWeight := 0.0
		active := make([]int, 0, len(items))
		for i, it := range items {
			w := it.shrink * float64(it.final)
			if w > 0 && it.final > it.minMain {
				totalWeight += w
				active = append(active, i)
			}
		}
		if totalWeight <= 0 || len(active) == 0 {
			break
		}
		type share struct {
			idx  int
			base int
			frac float64
		}
		shares := make([]share, len(active))
		for si, i := range active {
			w := items[i].shrink * float64(items[i].final)
			raw := float64(remaining) * w / totalWeight
			base := int(raw)
			shares[si] = share{idx: i, base: base, frac: raw - float64(base)}
		}
		assigned := 0
		for _, s := range shares {
			assigned += s.base
		}
		leftover := remaining - assigned
		sort.SliceStable(shares, func(a, b int) bool {
			if shares[a].frac != shares[b].frac {
				return shares[a].frac > shares[b].frac
			}
			return items[shares[a].idx].index < items[shares[b].idx].index
		})
		for k := 0; k < leftover && k < len(shares); k++ {
			shares[k].base++
		}
		reducedThisPass := 0
		for _, s := range shares {
			it := &items[s.idx]
			reduce := s.base
			if floor := it.final - it.minMain; reduce > floor {
				reduce = floor
			}
			it.final -= reduce
			reducedThisPass += reduce
		}
		remaining -= reducedThisPass
		if reducedThisPass == 0 {
			break
		}
	}
}

// justifyOffsets returns the starting offset and the inter-item gap to add
// (beyond the base gap) so that `used` main-axis cells of content are
// distributed across `avail` cells per justify. n is the active item count.
func justifyOffsets(justify Justify, avail, used, n int) (start int, extraGap int) {
	free := avail - used
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch justify {
	case JustifyStart:
		return 0, 0
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifyBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, free / (n - 1)
	case JustifyEvenly:
		return free / (n + 1), free / (n + 1)
	case JustifyAround:
		unit := free / n
		return unit / 2, unit
	default:
		return 0, 0
	}
}
