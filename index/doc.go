// Package index provides byte-offset indexes that give random access into
// record streams that can otherwise only be read forward.
//
// # Index Types
//
// OffsetIndex: native identifier -> byte offset, plus insertion order
//   - Get(id): O(1) map lookup
//   - GetByPosition(i): O(1) slice lookup, positions follow discovery order
//   - Init: set once a full pre-scan has populated the index
//
// TimeIndex: acquisition start time -> byte offset
//   - Nearest(t): binary search for the closest start time
//
// # Persistence
//
// An OffsetIndex can be written next to its source file with Encode or
// SaveFile and read back with Decode or LoadFile. The sidecar layout is:
//
//	magic "MZIX" | version u16 | reserved u16 | size u64 | modtime i64 |
//	body length u32 | crc32 u32 | snappy(body)
//
// where body holds the index name and (id, offset) pairs in position order.
// The stored Fingerprint lets a loader reject a sidecar whose source file
// has changed.
//
// # Usage Example
//
//	idx := index.NewOffsetIndex("spectrum")
//	idx.Insert("scan=1", 0)
//	idx.Insert("scan=2", 1812)
//	off, ok := idx.Get("scan=2")         // 1812, true
//	id, off, ok := idx.GetByPosition(0)  // "scan=1", 0, true
//
// Indexes are not safe for concurrent mutation. Concurrent readers are fine
// once the index is built.
package index
