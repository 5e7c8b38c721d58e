package mgf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paretje/mzdata/internal/testutil"
	"github.com/paretje/mzdata/pkg/types"
	"github.com/paretje/mzdata/spectrum"
)

const smallRecords = testutil.SmallMGFRecords

func smallTitle(i int) string {
	return fmt.Sprintf(`small.%d.%d.2 File:"small.raw", NativeID:"controllerType=0 controllerNumber=1 scan=%d"`, i, i, i)
}

func loadSmall(t *testing.T) []byte {
	t.Helper()
	return testutil.ReadFile(t, testutil.SmallMGF)
}

func openSmallIndexed(t *testing.T) *Reader {
	t.Helper()
	r, err := NewIndexed(bytes.NewReader(loadSmall(t)), types.OpenOptions{})
	require.NoError(t, err)
	return r
}

func TestSmall_Sequential(t *testing.T) {
	r, err := New(bytes.NewReader(loadSmall(t)), types.OpenOptions{})
	require.NoError(t, err)

	got := readAll(t, r)
	require.Len(t, got, smallRecords)
	assert.Equal(t, map[string]string{"mass": "Monoisotopic", "search": "MIS"}, r.FileParams())

	first := got[0]
	assert.Equal(t, smallTitle(1), first.ID())
	assert.Equal(t, 67.5, first.StartTime())
	require.Equal(t, 4, first.Peaks.Len())
	assert.Equal(t, spectrum.CentroidPeak{MZ: 132.6683, Intensity: 762.74}, first.Peaks.At(0))
	assert.Equal(t, "3+", first.Description.Annotations["charge"])

	ion, ok := first.PrecursorIon()
	require.True(t, ok)
	assert.Equal(t, 413.37, ion.MZ)
	assert.Equal(t, float32(1000), ion.Intensity)
	require.NotNil(t, ion.Charge)
	assert.Equal(t, int32(3), *ion.Charge)

	third := got[2]
	ion, ok = third.PrecursorIon()
	require.True(t, ok)
	assert.Nil(t, ion.Charge)
	assert.Equal(t, 6, third.Peaks.Len())
}

func TestBuildIndex_Small(t *testing.T) {
	data := loadSmall(t)
	r, err := NewIndexed(bytes.NewReader(data), types.OpenOptions{})
	require.NoError(t, err)

	idx := r.Index()
	require.True(t, idx.Init)
	require.Equal(t, smallRecords, r.Len())
	assert.Equal(t, int64(0), r.Position())

	for i := 0; i < smallRecords; i++ {
		id, off, ok := idx.GetByPosition(i)
		require.True(t, ok)
		assert.Equal(t, smallTitle(i+1), id)
		assert.True(t, bytes.HasPrefix(data[off:], []byte(BeginIons)), "offset %d of %q", off, id)
	}
	first, _ := idx.Get(smallTitle(1))
	assert.Equal(t, uint64(bytes.Index(data, []byte(BeginIons))), first)
}

func TestBuildIndex_TwoRecords(t *testing.T) {
	input := testutil.Block("TITLE=A") + testutil.Block("TITLE=B")
	r, err := NewIndexed(strings.NewReader(input), types.OpenOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, r.Index().Keys())
	a, _ := r.Index().Get("A")
	b, _ := r.Index().Get("B")
	assert.Equal(t, uint64(0), a)
	assert.Equal(t, uint64(len("BEGIN IONS\nTITLE=A\nEND IONS\n")), b)
}

func TestBuildIndex_EmptyInput(t *testing.T) {
	r, err := NewIndexed(strings.NewReader(""), types.OpenOptions{})
	require.NoError(t, err)
	assert.True(t, r.Index().Init)
	assert.Equal(t, 0, r.Len())

	_, err = r.GetSpectrumByIndex(0)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestBuildIndex_UntitledAndDuplicates(t *testing.T) {
	input := strings.Join([]string{
		"BEGIN IONS", "END IONS",
		"BEGIN IONS", "TITLE=A", "100 1", "END IONS",
		"BEGIN IONS", "TITLE=A", "200 2", "END IONS",
		"BEGIN IONS", "100 1", "END IONS",
	}, "\n")
	r, err := NewIndexed(strings.NewReader(input), types.OpenOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	s, err := r.GetSpectrumByID("A")
	require.NoError(t, err)
	assert.Equal(t, 200.0, s.Peaks.At(0).MZ)
}

func TestBuildIndex_ReplacesPrevious(t *testing.T) {
	r := openSmallIndexed(t)
	n, err := r.BuildIndex()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(loadSmall(t))), n)
	assert.Equal(t, smallRecords, r.Len())
}

func TestRandomAccess_MatchesSequential(t *testing.T) {
	r := openSmallIndexed(t)
	seq := readAll(t, r)
	require.Len(t, seq, smallRecords)

	for i := len(seq) - 1; i >= 0; i-- {
		byIndex, err := r.GetSpectrumByIndex(i)
		require.NoError(t, err)
		require.Equal(t, seq[i], byIndex)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for _, i := range rng.Perm(len(seq)) {
		byID, err := r.GetSpectrumByID(seq[i].ID())
		require.NoError(t, err)
		require.Equal(t, seq[i], byID)
	}
}

func TestRandomAccess_PreservesPosition(t *testing.T) {
	r := openSmallIndexed(t)

	for i := 0; i < 3; i++ {
		_, err := r.ReadNext()
		require.NoError(t, err)
	}
	pos, state := r.Position(), r.State()

	s, err := r.GetSpectrumByID(smallTitle(8))
	require.NoError(t, err)
	assert.Equal(t, smallTitle(8), s.ID())
	_, err = r.GetSpectrumByIndex(0)
	require.NoError(t, err)
	_, err = r.GetSpectrumByTime(120)
	require.NoError(t, err)

	assert.Equal(t, pos, r.Position())
	assert.Equal(t, state, r.State())

	next, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(4), next.ID())
}

func TestRandomAccess_FaultDoesNotLeak(t *testing.T) {
	input := "BEGIN IONS\nTITLE=A\n100 1\nEND IONS\nBEGIN IONS\nTITLE=B\nbroken\nEND IONS\n"
	r, err := NewIndexed(strings.NewReader(input), types.OpenOptions{})
	require.NoError(t, err)

	_, err = r.GetSpectrumByID("B")
	require.Error(t, err)
	assert.Equal(t, types.ErrKindMalformedHeaderLine, types.KindOf(err))
	assert.Equal(t, types.ErrKindNone, r.Fault())
	assert.Equal(t, StateStart, r.State())

	s, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, "A", s.ID())
}

func TestRandomAccess_NotFound(t *testing.T) {
	r := openSmallIndexed(t)

	_, err := r.GetSpectrumByID("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = r.GetSpectrumByIndex(smallRecords)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = r.GetSpectrumByIndex(-1)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, r.StartFromID("missing"), types.ErrNotFound)
}

func TestRandomAccess_IndexNotBuilt(t *testing.T) {
	r, err := New(bytes.NewReader(loadSmall(t)), types.OpenOptions{})
	require.NoError(t, err)
	assert.False(t, r.Index().Init)

	_, err = r.GetSpectrumByID(smallTitle(1))
	assert.ErrorIs(t, err, types.ErrIndexNotBuilt)
	_, err = r.GetSpectrumByIndex(0)
	assert.ErrorIs(t, err, types.ErrIndexNotBuilt)
	assert.ErrorIs(t, r.StartFromIndex(0), types.ErrIndexNotBuilt)
	assert.ErrorIs(t, r.SetIndex(nil), types.ErrIndexNotBuilt)
}

func TestRandomAccess_NotSeekable(t *testing.T) {
	src := struct{ io.Reader }{bytes.NewReader(loadSmall(t))}
	r, err := New(src, types.OpenOptions{})
	require.NoError(t, err)
	assert.False(t, r.Seekable())

	_, err = r.BuildIndex()
	assert.ErrorIs(t, err, types.ErrNotSeekable)
	_, err = r.GetSpectrumByTime(60)
	assert.ErrorIs(t, err, types.ErrNotSeekable)
	assert.ErrorIs(t, r.Reset(), types.ErrNotSeekable)

	_, err = New(src, types.OpenOptions{BuildIndex: true})
	assert.ErrorIs(t, err, types.ErrNotSeekable)

	// Forward reading is unaffected.
	assert.Len(t, readAll(t, r), smallRecords)
}

func TestGetSpectrumByTime(t *testing.T) {
	r := openSmallIndexed(t)

	tests := []struct {
		at   float64
		want int
	}{
		{at: 0, want: 1},
		{at: 67.5, want: 1},
		{at: 80, want: 3},
		{at: 78.75, want: 2}, // equidistant: earlier wins
		{at: 134, want: 10},
		{at: 1e6, want: 10},
	}
	for _, tt := range tests {
		s, err := r.GetSpectrumByTime(tt.at)
		require.NoError(t, err, "time %v", tt.at)
		assert.Equal(t, smallTitle(tt.want), s.ID(), "time %v", tt.at)
	}
}

func TestGetSpectrumByTime_NoTimes(t *testing.T) {
	r, err := NewIndexed(strings.NewReader(testutil.Block("TITLE=A")), types.OpenOptions{})
	require.NoError(t, err)
	_, err = r.GetSpectrumByTime(10)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStartFrom(t *testing.T) {
	r := openSmallIndexed(t)

	require.NoError(t, r.StartFromID(smallTitle(5)))
	s, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(5), s.ID())
	s, err = r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(6), s.ID())

	require.NoError(t, r.StartFromIndex(smallRecords-1))
	s, err = r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(smallRecords), s.ID())
	_, err = r.ReadNext()
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, r.StartFromTime(97))
	s, err = r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(5), s.ID())
}

func TestReset(t *testing.T) {
	r := openSmallIndexed(t)
	require.Len(t, readAll(t, r), smallRecords)

	require.NoError(t, r.Reset())
	s, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(1), s.ID())
}

func TestSetIndex(t *testing.T) {
	indexed := openSmallIndexed(t)
	r, err := New(bytes.NewReader(loadSmall(t)), types.OpenOptions{})
	require.NoError(t, err)

	require.NoError(t, r.SetIndex(indexed.Index()))
	s, err := r.GetSpectrumByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, smallTitle(2), s.ID())
}

func TestSeekerStartingMidStream(t *testing.T) {
	data := loadSmall(t)
	src := bytes.NewReader(data)
	start := int64(bytes.Index(data, []byte(BeginIons)))
	_, err := src.Seek(start, io.SeekStart)
	require.NoError(t, err)

	r, err := New(src, types.OpenOptions{})
	require.NoError(t, err)
	assert.Equal(t, start, r.Position())
	assert.Empty(t, r.FileParams())
	assert.Len(t, readAll(t, r), smallRecords)
}

func TestAll_SmallFile(t *testing.T) {
	r := openSmallIndexed(t)
	var ids []string
	for s, err := range r.All() {
		require.NoError(t, err)
		ids = append(ids, s.ID())
		if len(ids) == 4 {
			break
		}
	}
	assert.Equal(t, []string{smallTitle(1), smallTitle(2), smallTitle(3), smallTitle(4)}, ids)

	s, err := r.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, smallTitle(5), s.ID())
}

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestIOFault(t *testing.T) {
	boom := errors.New("disk on fire")
	r, err := New(&failingReader{data: []byte("BEGIN IONS\nTITLE=A\n"), err: boom}, types.OpenOptions{})
	require.NoError(t, err)

	var faults []error
	for _, err := range r.All() {
		faults = append(faults, err)
	}
	require.Len(t, faults, 1)
	assert.ErrorIs(t, faults[0], boom)
	assert.Equal(t, types.ErrKindIO, types.KindOf(faults[0]))
	assert.Equal(t, types.ErrKindIO, r.Fault())
}
