package chunker

import "time"

// Span is a half-open time range [Start, End) of the source audio.
type Span struct {
	Index int
	Start time.Duration
	End   time.Duration
}

func (s Span) Length() time.Duration {
	return s.End - s.Start
}

// split halves the span at a millisecond boundary. Both halves keep the index.
func (s Span) split() (Span, Span) {
	mid := s.Start + (s.Length()/2).Truncate(time.Millisecond)
	return Span{Index: s.Index, Start: s.Start, End: mid},
		Span{Index: s.Index, Start: mid, End: s.End}
}

// ChunkDuration sizes chunks so each one holds about ceiling bytes, assuming
// uniform byte density across the source. The result is at least 1ms.
func ChunkDuration(ceiling, totalBytes int64, total time.Duration) time.Duration {
	if totalBytes <= 0 || total <= 0 {
		return total
	}
	ms := ceiling * total.Milliseconds() / totalBytes
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// Plan partitions [0, total) into consecutive spans of length chunk; the last may be shorter.
func Plan(total, chunk time.Duration) []Span {
	if total <= 0 || chunk <= 0 {
		return nil
	}

	spans := make([]Span, 0, int(total/chunk)+1)
	for start, i := time.Duration(0), 0; start < total; start, i = start+chunk, i+1 {
		end := start + chunk
		if end > total {
			end = total
		}
		spans = append(spans, Span{Index: i, Start: start, End: end})
	}
	return spans
}
