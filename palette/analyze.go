package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Selection holds the outcome of a palette analysis.
type Selection struct {
	Accent     Key `json:"accent"`
	Complement Key `json:"complement"`
}

// Fallback keys returned when no candidate qualifies. Unreachable for a
// complete palette, but a partial palette from an external loader is
// plausible in practice.
const (
	fallbackAccent     = Key("color1")
	fallbackComplement = Key("color2")
)

// hls converts a color to the HLS model with hue, lightness and saturation
// each in [0,1].
func hls(c colorful.Color) (h, l, s float64) {
	h, s, l = c.Hsl()
	return h / 360.0, l, s
}

// Analyze validates the palette and selects its accent and complement colors.
func Analyze(p Palette) (Selection, error) {
	if err := p.Validate(); err != nil {
		return Selection{}, err
	}

	accent := SelectAccent(p)
	return Selection{
		Accent:     accent,
		Complement: SelectComplement(p, accent),
	}, nil
}

// SelectAccent returns the key of the most vibrant palette entry.
//
// Vibrancy is scored as s²·(1−|l−0.45|): squaring saturation sharply
// penalizes washed-out colors, and the lightness term penalizes entries too
// close to black or white. The maximum wins under a strict comparison, so
// ties resolve to the lowest index.
func SelectAccent(p Palette) Key {
	best := fallbackAccent
	bestScore := 0.0

	for _, k := range accentCandidates() {
		c, ok := p[k]
		if !ok {
			continue
		}

		_, l, s := hls(c)
		score := s * s * (1 - math.Abs(l-0.45))
		if score > bestScore {
			bestScore = score
			best = k
		}
	}

	return best
}

// SelectComplement returns the key of the palette entry most hue-opposite to
// the accent.
//
// Candidates are scored by how close their hue sits to the opposite side of the
// hue wheel (0.5 away, with circular wrap), weighted by saturation and a
// lightness balance term. The maximum wins under a strict comparison, so
// ties resolve to the lowest index.
func SelectComplement(p Palette, accent Key) Key {
	accentColor, ok := p[accent]
	if !ok {
		return fallbackComplement
	}
	accentHue, _, _ := hls(accentColor)

	best := fallbackComplement
	bestScore := -1.0

	for _, k := range complementCandidates(accent) {
		c, ok := p[k]
		if !ok {
			continue
		}

		h, l, s := hls(c)

		hueDiff := math.Abs(h - accentHue)
		if hueDiff > 0.5 {
			// Wrap around the color wheel.
			hueDiff = 1 - hueDiff
		}

		// 0 means a perfect complement on the opposite side of the wheel.
		complementDistance := math.Abs(hueDiff - 0.5)

		score := (1 - 2*complementDistance) * s * (1 - math.Abs(l-0.4))
		if score > bestScore {
			bestScore = score
			best = k
		}
	}

	return best
}

// relativeLuminance computes the WCAG relative luminance of a color.
func relativeLuminance(c colorful.Color) float64 {
	linearize := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}

	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio computes the WCAG contrast ratio between two colors.
// The result is always in [1, 21]; the +0.05 floor keeps the denominator
// away from zero.
func ContrastRatio(a, b colorful.Color) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// BestTextColorFor returns whichever candidate text color has the higher
// contrast ratio against the given background. Ties favor the foreground
// candidate.
func BestTextColorFor(background, fgCandidate, bgCandidate colorful.Color) colorful.Color {
	if ContrastRatio(bgCandidate, background) > ContrastRatio(fgCandidate, background) {
		return bgCandidate
	}
	return fgCandidate
}

// TextColorKey returns Foreground or Background, whichever of the palette's
// two named entries reads better on the given background color. Ties favor
// Foreground.
func (p Palette) TextColorKey(background colorful.Color) Key {
	fg := ContrastRatio(p[Foreground], background)
	bg := ContrastRatio(p[Background], background)
	if bg > fg {
		return Background
	}
	return Foreground
}
