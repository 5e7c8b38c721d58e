/*
Package mgf reads Mascot Generic Format (MGF) peak lists.

An MGF file is a sequence of blocks:

	BEGIN IONS
	TITLE=scan=1
	RTINSECONDS=12.5
	PEPMASS=500.5 1000.0 2+
	CHARGE=2+
	100.5	250.25
	101.5 90.0
	END IONS

TITLE becomes the spectrum's native identifier, RTINSECONDS the start time
of its first scan event, and PEPMASS its precursor (m/z, intensity, charge).
Every other KEY=VALUE line is kept as an annotation under the lower-cased
key. Peak lines are m/z and intensity separated by a tab or whitespace;
further columns are ignored. Peaks keep file order.

# Sequential Reading

	r, err := mgf.Open("run.mgf", types.OpenOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	defer r.Close()

	for r.Next() {
	    s := r.Spectrum()
	    fmt.Println(s.ID(), s.Peaks.Len())
	}
	if err := r.Err(); err != nil {
	    log.Fatal(err)
	}

# Random Access

BuildIndex makes one raw pass over the file and maps each TITLE to the byte
offset of its BEGIN IONS line. Lookups seek to that offset, decode one
block, and seek back, so they can be interleaved with sequential reading:

	r, _ := mgf.Open("run.mgf", types.DefaultOpenOptions())
	s, err := r.GetSpectrumByID("scan=42")
	s, err = r.GetSpectrumByIndex(0)
	s, err = r.GetSpectrumByTime(600.0)

StartFromID, StartFromIndex and StartFromTime reposition the sequential
cursor instead, so iteration continues forward from that spectrum.

# Error Handling

Decode faults (malformed header or peak lines) are returned as *types.Error
with a kind and the byte offset of the offending line. The reader stays
usable: the next read skips to the following BEGIN IONS. Callers decide
whether a fault aborts the whole file or only drops one spectrum.

# Concurrency

A Reader is owned by one goroutine at a time. Lookups move the shared
stream, so concurrent use must be serialized by the caller, or each
goroutine must open its own Reader.
*/
package mgf
