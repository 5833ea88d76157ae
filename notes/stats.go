package notes

// Stats are whole-set figures every note's geometry is normalised against
type Stats struct {
	Count     int
	MinPitch  uint8
	MaxPitch  uint8
	MaxLength int64
	MaxTime   int64 // latest EndTick
	Tracks    []TrackStats
}

// TrackStats summarises one track
type TrackStats struct {
	Track    int
	Name     string
	Notes    int
	MinPitch uint8
	MaxPitch uint8
}

// PitchRange returns MaxPitch - MinPitch.
func (s Stats) PitchRange() int {
	return int(s.MaxPitch) - int(s.MinPitch)
}

// Summarize computes Stats in one pass. Tracks are listed in order of first
// appearance.
func Summarize(ns []Note) Stats {
	var s Stats
	if len(ns) == 0 {
		return s
	}

	s.MinPitch, s.MaxPitch = ns[0].Pitch, ns[0].Pitch
	index := make(map[int]int)

	for _, n := range ns {
		s.Count++
		s.MinPitch = min(s.MinPitch, n.Pitch)
		s.MaxPitch = max(s.MaxPitch, n.Pitch)
		s.MaxLength = max(s.MaxLength, n.Length)
		s.MaxTime = max(s.MaxTime, n.EndTick())

		i, ok := index[n.Track]
		if !ok {
			i = len(s.Tracks)
			index[n.Track] = i
			s.Tracks = append(s.Tracks, TrackStats{
				Track:    n.Track,
				Name:     n.TrackName,
				MinPitch: n.Pitch,
				MaxPitch: n.Pitch,
			})
		}
		t := &s.Tracks[i]
		t.Notes++
		t.MinPitch = min(t.MinPitch, n.Pitch)
		t.MaxPitch = max(t.MaxPitch, n.Pitch)
	}
	return s
}
