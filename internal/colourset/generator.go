package colourset

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// hueOffsets are the candidate steps the alternative generator takes from
// the base hue when no hue is pinned. The final entry, the wheel complement,
// is computed per base.
var hueOffsets = []int{0, 30, 60, 90, 120, -30, -60, -90, -120}

// warnAfter is the attempt count at which a still-running rejection loop is
// logged. Purely diagnostic; the search keeps going.
const warnAfter = 1000

// Generator produces alternative coloursets that go with a base colourset.
// It rejection-samples: candidates equal to the base, or that the clash
// heuristic rejects, are discarded and redrawn. With no hue and shade
// pinned the search always terminates; pinning both to values that always
// equal or clash with the base makes the loop spin forever. That hazard is
// inherited from the generation scheme and not guarded by default.
// MaxAttempts, when non-zero, turns it into an error instead.
type Generator struct {
	factory *Factory
	logger  hclog.Logger

	// MaxAttempts, when > 0, aborts a rejection loop after that many
	// candidates. 0 means search forever.
	MaxAttempts int
}

// NewGenerator creates a Generator drawing candidates from factory.
// logger may be nil.
func NewGenerator(factory *Factory, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{factory: factory, logger: logger}
}

// Alternative returns a colourset that accompanies base: never equal to it
// and never clashing with it. hue HueUnset means "derive one from the base
// hue"; shade ShadeRandom (or anything outside 1..4) means a random shade
// per attempt.
func (g *Generator) Alternative(base *Colourset, hue, shade int) (*Colourset, error) {
	return g.search(base, hue, shade, nil)
}

// Set returns n coloursets that are pairwise non-equal and pairwise
// compatible, with each one also compatible with base. pinnedHues and
// pinnedShades pin slot i to a hue (HueUnset = free) or shade (ShadeRandom =
// free); either slice may be shorter than n or nil. Members are accepted
// incrementally and never revisited, so over-constrained later slots can
// search forever (or fail, when MaxAttempts is set).
func (g *Generator) Set(base *Colourset, n int, pinnedHues, pinnedShades []int) ([]*Colourset, error) {
	accepted := make([]*Colourset, 0, n)
	for i := 0; i < n; i++ {
		hue := HueUnset
		if i < len(pinnedHues) {
			hue = pinnedHues[i]
		}
		shade := ShadeRandom
		if i < len(pinnedShades) {
			shade = pinnedShades[i]
		}
		cs, err := g.search(base, hue, shade, accepted)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		accepted = append(accepted, cs)
	}
	return accepted, nil
}

// search runs one rejection-sampling loop: draw a candidate, keep it if it
// is acceptable against the base and every already-accepted member,
// otherwise redraw. The hue offset is re-sampled on every attempt.
func (g *Generator) search(base *Colourset, hue, shade int, accepted []*Colourset) (*Colourset, error) {
	for attempt := 1; ; attempt++ {
		candidate := g.factory.New(g.candidateHue(base, hue), shade)
		if ok, reason := acceptable(base, candidate, accepted); !ok {
			g.logger.Debug("rejected candidate",
				"candidate", candidate.String(), "reason", reason, "attempt", attempt)
			if attempt == warnAfter {
				g.logger.Warn("rejection sampling is not converging",
					"base", base.String(), "attempts", attempt)
			}
			if g.MaxAttempts > 0 && attempt >= g.MaxAttempts {
				return nil, fmt.Errorf("no compatible colourset for %s after %d attempts", base, attempt)
			}
			continue
		}
		return candidate, nil
	}
}

// candidateHue picks the hue for one attempt: the pinned hue when given,
// otherwise the base hue plus a random offset, wrapped into [0, 360].
func (g *Generator) candidateHue(base *Colourset, hue int) int {
	if hue != HueUnset {
		return hue
	}
	rng := g.factory.rng
	i := rng.Intn(len(hueOffsets) + 1)
	var offset int
	if i == len(hueOffsets) {
		offset = 360 - base.Hue() // wheel complement
	} else {
		offset = hueOffsets[i]
	}
	h := base.Hue() + offset
	if h < 0 {
		h += 360
	}
	if h > 360 {
		h -= 360
	}
	return h
}

// acceptable checks a candidate against the base and the accepted members.
func acceptable(base, candidate *Colourset, accepted []*Colourset) (bool, string) {
	if candidate.Equal(base) {
		return false, "equal to base"
	}
	if Clashes(base, candidate) {
		return false, "clashes with base"
	}
	for _, member := range accepted {
		if candidate.Equal(member) {
			return false, "equal to " + member.String()
		}
		if Clashes(member, candidate) {
			return false, "clashes with " + member.String()
		}
	}
	return true, ""
}
