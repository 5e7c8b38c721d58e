package spectrum

// SignalContinuity describes whether peaks are discrete or a continuous profile.
type SignalContinuity uint8

const (
	ContinuityUnknown SignalContinuity = iota
	Centroid
	Profile
)

func (c SignalContinuity) String() string {
	switch c {
	case Centroid:
		return "centroid"
	case Profile:
		return "profile"
	default:
		return "unknown"
	}
}

// Polarity is the ionization polarity of a scan.
type Polarity int8

const (
	PolarityUnknown Polarity = 0
	Positive        Polarity = 1
	Negative        Polarity = -1
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// SelectedIon is the ion isolated for fragmentation. Charge is nil when
// the source did not report one.
type SelectedIon struct {
	MZ        float64
	Intensity float32
	Charge    *int32
}

// Precursor describes the parent ion of a fragment spectrum.
type Precursor struct {
	Ion SelectedIon
}

// ScanEvent is one acquisition event. StartTime is kept in the unit the
// source file uses (seconds for MGF RTINSECONDS).
type ScanEvent struct {
	StartTime float64
}

// Acquisition is the ordered list of scan events that produced a spectrum.
type Acquisition struct {
	Scans []ScanEvent
}

// FirstScan returns the first scan event, creating it if none exists.
func (a *Acquisition) FirstScan() *ScanEvent {
	if len(a.Scans) == 0 {
		a.Scans = append(a.Scans, ScanEvent{})
	}
	return &a.Scans[0]
}

// StartTime is the start time of the first scan event, or 0.
func (a *Acquisition) StartTime() float64 {
	if len(a.Scans) == 0 {
		return 0
	}
	return a.Scans[0].StartTime
}

// Description holds everything known about a spectrum except its peaks.
type Description struct {
	ID               string
	MSLevel          uint8
	SignalContinuity SignalContinuity
	Polarity         Polarity
	Precursor        *Precursor
	Acquisition      Acquisition

	// Annotations holds unrecognised header fields keyed by lower-cased name.
	Annotations map[string]string
}

// Annotate stores a free-form annotation, replacing any previous value.
func (d *Description) Annotate(key, value string) {
	if d.Annotations == nil {
		d.Annotations = make(map[string]string)
	}
	d.Annotations[key] = value
}

// Clone returns a deep copy.
func (d *Description) Clone() Description {
	out := *d
	if d.Precursor != nil {
		p := *d.Precursor
		if p.Ion.Charge != nil {
			z := *p.Ion.Charge
			p.Ion.Charge = &z
		}
		out.Precursor = &p
	}
	if d.Acquisition.Scans != nil {
		out.Acquisition.Scans = append([]ScanEvent(nil), d.Acquisition.Scans...)
	}
	if d.Annotations != nil {
		out.Annotations = make(map[string]string, len(d.Annotations))
		for k, v := range d.Annotations {
			out.Annotations[k] = v
		}
	}
	return out
}
