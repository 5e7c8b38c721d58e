package spectrum

import "sort"

// CentroidPeak is a single discrete (m/z, intensity) pair.
type CentroidPeak struct {
	MZ        float64
	Intensity float32
}

// PeakSet holds centroid peaks in the order they were pushed. It never
// reorders on Push; call Sort when m/z order is required.
type PeakSet struct {
	peaks []CentroidPeak
}

// NewPeakSet wraps peaks without copying.
func NewPeakSet(peaks []CentroidPeak) PeakSet {
	return PeakSet{peaks: peaks}
}

// Push appends a peak.
func (p *PeakSet) Push(peak CentroidPeak) {
	p.peaks = append(p.peaks, peak)
}

// Len returns the number of peaks.
func (p *PeakSet) Len() int { return len(p.peaks) }

// At returns the i-th peak in insertion order.
func (p *PeakSet) At(i int) CentroidPeak { return p.peaks[i] }

// Peaks returns the backing slice. Callers must not retain it across Push.
func (p *PeakSet) Peaks() []CentroidPeak { return p.peaks }

// IsSorted reports whether the peaks are in non-decreasing m/z order.
func (p *PeakSet) IsSorted() bool {
	return sort.SliceIsSorted(p.peaks, func(i, j int) bool {
		return p.peaks[i].MZ < p.peaks[j].MZ
	})
}

// Sort orders the peaks by m/z, keeping file order among equal m/z values.
func (p *PeakSet) Sort() {
	sort.SliceStable(p.peaks, func(i, j int) bool {
		return p.peaks[i].MZ < p.peaks[j].MZ
	})
}

// TIC returns the total ion current (sum of intensities).
func (p *PeakSet) TIC() float64 {
	var total float64
	for _, pk := range p.peaks {
		total += float64(pk.Intensity)
	}
	return total
}

// BasePeak returns the most intense peak. The first peak wins ties.
func (p *PeakSet) BasePeak() (CentroidPeak, bool) {
	if len(p.peaks) == 0 {
		return CentroidPeak{}, false
	}
	best := p.peaks[0]
	for _, pk := range p.peaks[1:] {
		if pk.Intensity > best.Intensity {
			best = pk
		}
	}
	return best, true
}

// Clone returns a deep copy.
func (p *PeakSet) Clone() PeakSet {
	if p.peaks == nil {
		return PeakSet{}
	}
	out := make([]CentroidPeak, len(p.peaks))
	copy(out, p.peaks)
	return PeakSet{peaks: out}
}
