package mgf

const (
	// ============================================================================
	// Block Delimiters
	// ============================================================================

	// BeginIons opens a spectrum block.
	BeginIons = "BEGIN IONS"

	// EndIons closes a spectrum block.
	EndIons = "END IONS"

	// ============================================================================
	// Header Lines
	// ============================================================================

	// HeaderAssignment separates a header key from its value.
	HeaderAssignment = "="

	// KeyTitle carries the native identifier of the spectrum.
	KeyTitle = "TITLE"

	// KeyRetentionTime carries the scan start time in seconds.
	KeyRetentionTime = "RTINSECONDS"

	// KeyPepMass carries the precursor m/z, intensity and optional charge.
	KeyPepMass = "PEPMASS"

	// titlePrefix is what the index pre-scan looks for inside a block.
	titlePrefix = KeyTitle + HeaderAssignment

	// retentionTimePrefix is what the time pre-scan looks for inside a block.
	retentionTimePrefix = KeyRetentionTime + HeaderAssignment

	// ============================================================================
	// Defaults
	// ============================================================================

	// DefaultMSLevel is assumed for every MGF spectrum; the format has no
	// standard field for it and is used almost exclusively for MS/MS data.
	DefaultMSLevel = 2

	// IndexName labels the offset index built by the pre-scan.
	IndexName = "spectrum"

	// SidecarSuffix is appended to the file path to locate a persisted index.
	SidecarSuffix = ".mzix"

	// utf8BOM may precede the first line of a file.
	utf8BOM = "\xef\xbb\xbf"
)
