package nav

import "math/rand"

const (
	// maxSequential caps how many in-order followers of the current page are
	// suggested before random backfill takes over.
	maxSequential = 2

	// Target suggestion count is drawn uniformly from [minTarget, maxTarget].
	minTarget = 3
	maxTarget = 5

	// maxDraws bounds the rejection-sampling loop so a small page sequence
	// cannot spin forever chasing an unreachable target.
	maxDraws = 50
)

// Suggest returns an ordered list of pages to read next, given the full
// flattened sequence and the path of the page currently being viewed.
//
// The first entries are deterministic: the one or two pages that immediately
// follow the current page in outline order. The rest are drawn uniformly at
// random from the whole sequence until a target count (3 to 5, chosen at
// random) is reached or the draw budget runs out. The result never contains
// the current page, never contains duplicates, and has at most maxTarget
// entries — possibly fewer when the sequence is small.
//
// A current path that does not resolve in pages is not an error: the
// sequential phase contributes nothing and backfill does all the work.
//
// The random source is supplied by the caller so suggestion runs are
// reproducible under test.
func Suggest(pages []FlatPage, current string, rnd *rand.Rand) []FlatPage {
	out := make([]FlatPage, 0, maxTarget)

	if idx := PageIndex(pages, current); idx >= 0 {
		for i := idx + 1; i <= idx+maxSequential && i < len(pages); i++ {
			out = accept(out, pages[i], current)
		}
	}

	if len(pages) == 0 {
		return out
	}

	target := minTarget + rnd.Intn(maxTarget-minTarget+1)
	for draws := 0; len(out) < target && draws < maxDraws; draws++ {
		out = accept(out, pages[rnd.Intn(len(pages))], current)
	}
	return out
}

// accept appends candidate unless it is the current page or already present.
func accept(out []FlatPage, candidate FlatPage, current string) []FlatPage {
	if candidate.Path == current {
		return out
	}
	for _, p := range out {
		if p.Path == candidate.Path {
			return out
		}
	}
	return append(out, candidate)
}
