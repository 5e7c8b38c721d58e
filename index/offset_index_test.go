package index

import (
	"testing"
)

// Test_OffsetIndex_Insert tests adding entries and looking them up.
func Test_OffsetIndex_Insert(t *testing.T) {
	idx := NewOffsetIndex("spectrum")

	idx.Insert("A", 0)
	idx.Insert("B", 120)
	idx.Insert("C", 355)

	if off, ok := idx.Get("B"); !ok || off != 120 {
		t.Errorf("Get(B) = %d, %v; want 120, true", off, ok)
	}
	if _, ok := idx.Get("missing"); ok {
		t.Errorf("Get(missing) should fail")
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
	if idx.IsEmpty() {
		t.Errorf("IsEmpty() = true after inserts")
	}
}

// Test_OffsetIndex_GetByPosition tests position order follows first insertion.
func Test_OffsetIndex_GetByPosition(t *testing.T) {
	idx := NewOffsetIndex("spectrum")
	idx.Insert("A", 10)
	idx.Insert("B", 20)

	tests := []struct {
		pos    int
		wantID string
		wantOf uint64
		wantOK bool
	}{
		{0, "A", 10, true},
		{1, "B", 20, true},
		{2, "", 0, false},
		{-1, "", 0, false},
	}
	for _, tt := range tests {
		id, off, ok := idx.GetByPosition(tt.pos)
		if id != tt.wantID || off != tt.wantOf || ok != tt.wantOK {
			t.Errorf("GetByPosition(%d) = %q, %d, %v; want %q, %d, %v",
				tt.pos, id, off, ok, tt.wantID, tt.wantOf, tt.wantOK)
		}
	}
}

// Test_OffsetIndex_Overwrite tests that re-inserting keeps the position.
func Test_OffsetIndex_Overwrite(t *testing.T) {
	idx := NewOffsetIndex("spectrum")
	idx.Insert("A", 10)
	idx.Insert("B", 20)
	idx.Insert("A", 99)

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
	id, off, _ := idx.GetByPosition(0)
	if id != "A" || off != 99 {
		t.Errorf("GetByPosition(0) = %q, %d; want A, 99", id, off)
	}
	if pos, ok := idx.PositionOf("B"); !ok || pos != 1 {
		t.Errorf("PositionOf(B) = %d, %v; want 1, true", pos, ok)
	}
}

func Test_OffsetIndex_Reset(t *testing.T) {
	idx := NewOffsetIndex("spectrum")
	idx.Insert("A", 10)
	idx.Init = true
	idx.Reset()

	if !idx.IsEmpty() || idx.Init {
		t.Errorf("Reset left Len=%d Init=%v", idx.Len(), idx.Init)
	}
	if _, ok := idx.Get("A"); ok {
		t.Errorf("Get(A) should fail after Reset")
	}
}

func Test_OffsetIndex_KeysIsCopy(t *testing.T) {
	idx := NewOffsetIndex("spectrum")
	idx.Insert("A", 10)
	keys := idx.Keys()
	keys[0] = "Z"
	if id, _, _ := idx.GetByPosition(0); id != "A" {
		t.Errorf("mutating Keys() changed the index: %q", id)
	}
}

func Test_OffsetIndex_Stats(t *testing.T) {
	idx := NewOffsetIndex("spectrum")
	idx.Insert("A", 10)
	idx.Insert("BB", 20)
	st := idx.Stats()
	if st.Entries != 2 || st.Name != "spectrum" || st.Init {
		t.Errorf("Stats() = %+v", st)
	}
	if st.BytesApprox <= 0 {
		t.Errorf("BytesApprox = %d, want > 0", st.BytesApprox)
	}
}

func Test_TimeIndex_Nearest(t *testing.T) {
	idx := NewTimeIndex()
	idx.Insert(30.0, 300)
	idx.Insert(10.0, 100)
	idx.Insert(20.0, 200)
	idx.Finalize()

	tests := []struct {
		t    float64
		want uint64
	}{
		{-5, 100},
		{10, 100},
		{14.9, 100},
		{15, 100}, // tie goes to the earlier entry
		{15.1, 200},
		{26, 300},
		{1000, 300},
	}
	for _, tt := range tests {
		e, ok := idx.Nearest(tt.t)
		if !ok || e.Offset != tt.want {
			t.Errorf("Nearest(%v) = %+v, %v; want offset %d", tt.t, e, ok, tt.want)
		}
	}
}

func Test_TimeIndex_Empty(t *testing.T) {
	idx := NewTimeIndex()
	if _, ok := idx.Nearest(1); ok {
		t.Errorf("Nearest on empty index should fail")
	}
	idx.Finalize()
	if !idx.Init || idx.Len() != 0 {
		t.Errorf("Finalize on empty index: Init=%v Len=%d", idx.Init, idx.Len())
	}
}
