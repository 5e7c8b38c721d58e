package testutil

// Test file paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// SmallMGF holds ten centroid MS2 spectra preceded by two file-level
	// parameters. Titles are "small.<i>.<i>.2 File:..." for i in 1..10,
	// start times 60+7.5*i seconds.
	SmallMGF = "testdata/small.mgf"

	// SmallMGFRecords is the number of spectra in SmallMGF.
	SmallMGFRecords = 10
)
