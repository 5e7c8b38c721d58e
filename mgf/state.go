package mgf

// ParserState is the position of the decoder within the MGF grammar.
type ParserState int

const (
	// StateStart is the initial state: everything but BEGIN IONS and
	// file-level KEY=VALUE parameters is ignored.
	StateStart ParserState = iota
	// StateFileHeader is entered once a file-level parameter has been seen
	// before the first block. It otherwise behaves like StateStart.
	StateFileHeader
	// StateScanHeaders reads KEY=VALUE lines of the current block.
	StateScanHeaders
	// StatePeaks reads peak lines of the current block.
	StatePeaks
	// StateBetween follows END IONS; lines other than BEGIN IONS are discarded.
	StateBetween
	// StateDone is entered when a read yields no bytes.
	StateDone
	// StateError records that the last read stopped on a fault. The next
	// read resumes as if in StateBetween.
	StateError
)

var stateNames = [...]string{
	StateStart:       "Start",
	StateFileHeader:  "FileHeader",
	StateScanHeaders: "ScanHeaders",
	StatePeaks:       "Peaks",
	StateBetween:     "Between",
	StateDone:        "Done",
	StateError:       "Error",
}

func (s ParserState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// inBlock reports whether the decoder is between BEGIN IONS and END IONS.
func (s ParserState) inBlock() bool {
	return s == StateScanHeaders || s == StatePeaks
}
