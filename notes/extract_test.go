package notes

import (
	"testing"

	"go-radial/midi"
)

func on(track int, tick int64, pitch uint8) midi.RawEvent {
	return midi.RawEvent{Track: track, Tick: tick, Kind: midi.NoteOn, Pitch: pitch, Velocity: 80}
}

func off(track int, tick int64, pitch uint8) midi.RawEvent {
	return midi.RawEvent{Track: track, Tick: tick, Kind: midi.NoteOff, Pitch: pitch}
}

func onCh(track int, ch uint8, tick int64, pitch uint8) midi.RawEvent {
	ev := on(track, tick, pitch)
	ev.Channel = ch
	return ev
}

func offCh(track int, ch uint8, tick int64, pitch uint8) midi.RawEvent {
	ev := off(track, tick, pitch)
	ev.Channel = ch
	return ev
}

func name(track int, n string) midi.RawEvent {
	return midi.RawEvent{Track: track, Kind: midi.TrackName, Name: n}
}

type span struct {
	start, length int64
}

func spans(ns []Note) []span {
	out := make([]span, len(ns))
	for i, n := range ns {
		out[i] = span{n.StartTick, n.Length}
	}
	return out
}

func equalSpans(a, b []span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExtractPairing(t *testing.T) {
	tests := []struct {
		name   string
		events []midi.RawEvent
		want   []span
	}{
		{
			name:   "single note",
			events: []midi.RawEvent{on(1, 10, 60), off(1, 35, 60)},
			want:   []span{{10, 25}},
		},
		{
			name:   "fifo on overlapping same pitch",
			events: []midi.RawEvent{on(1, 0, 60), on(1, 5, 60), off(1, 10, 60), off(1, 20, 60)},
			want:   []span{{0, 10}, {5, 15}},
		},
		{
			name: "velocity zero note-on ends a note",
			events: []midi.RawEvent{
				on(1, 0, 64),
				{Track: 1, Tick: 48, Kind: midi.NoteOn, Pitch: 64, Velocity: 0},
			},
			want: []span{{0, 48}},
		},
		{
			name:   "unterminated note dropped",
			events: []midi.RawEvent{on(1, 0, 60), on(1, 10, 62), off(1, 20, 62)},
			want:   []span{{10, 10}},
		},
		{
			name:   "orphan note-off ignored",
			events: []midi.RawEvent{off(1, 5, 60), on(1, 10, 60), off(1, 30, 60)},
			want:   []span{{10, 20}},
		},
		{
			name:   "pairing is per track",
			events: []midi.RawEvent{on(1, 0, 60), on(2, 5, 60), off(2, 7, 60), off(1, 50, 60)},
			want:   []span{{5, 2}, {0, 50}},
		},
		{
			name:   "pairing is per pitch",
			events: []midi.RawEvent{on(1, 0, 60), on(1, 0, 67), off(1, 10, 67), off(1, 20, 60)},
			want:   []span{{0, 10}, {0, 20}},
		},
		{
			name:   "pairing is per channel within a track",
			events: []midi.RawEvent{onCh(0, 0, 0, 60), onCh(0, 1, 5, 60), offCh(0, 1, 10, 60), offCh(0, 0, 20, 60)},
			want:   []span{{5, 5}, {0, 20}},
		},
		{
			name:   "note-off on another channel leaves the note open",
			events: []midi.RawEvent{onCh(0, 0, 0, 60), offCh(0, 3, 10, 60)},
			want:   []span{},
		},
		{
			name:   "empty",
			events: nil,
			want:   []span{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := spans(Extract(tc.events))
			if !equalSpans(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExtractZeroLength(t *testing.T) {
	events := []midi.RawEvent{on(1, 10, 60), off(1, 10, 60), on(1, 20, 62), off(1, 30, 62)}

	tests := []struct {
		policy ZeroLengthPolicy
		want   []span
	}{
		{KeepZeroLength, []span{{10, 0}, {20, 10}}},
		{DropZeroLength, []span{{20, 10}}},
		{MinLengthOne, []span{{10, 1}, {20, 10}}},
	}
	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			got := spans(Extract(events, WithZeroLength(tc.policy)))
			if !equalSpans(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseZeroLengthPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ZeroLengthPolicy
		wantErr bool
	}{
		{"", KeepZeroLength, false},
		{"keep", KeepZeroLength, false},
		{" Drop ", DropZeroLength, false},
		{"min-one", MinLengthOne, false},
		{"stretch", KeepZeroLength, true},
	}
	for _, tc := range tests {
		got, err := ParseZeroLengthPolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseZeroLengthPolicy(%q) err = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseZeroLengthPolicy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExtractTrackNames(t *testing.T) {
	events := []midi.RawEvent{
		name(1, "piano"),
		name(1, "second name ignored"),
		on(1, 0, 60), off(1, 10, 60),
		on(2, 0, 40), off(2, 10, 40),
	}
	ns := Extract(events)
	SortByStart(ns)
	if len(ns) != 2 {
		t.Fatalf("got %d notes", len(ns))
	}
	if ns[0].TrackName != "piano" {
		t.Errorf("track 1 name = %q, want piano", ns[0].TrackName)
	}
	if ns[1].TrackName != "" {
		t.Errorf("track 2 name = %q, want empty", ns[1].TrackName)
	}
}

func TestExtractTrackNameAfterNotes(t *testing.T) {
	ns := Extract([]midi.RawEvent{on(3, 0, 60), off(3, 10, 60), name(3, "late")})
	if len(ns) != 1 || ns[0].TrackName != "late" {
		t.Fatalf("notes = %v", ns)
	}
}

func TestExtractScenario(t *testing.T) {
	events := []midi.RawEvent{
		name(1, "piano"),
		on(1, 0, 60),
		off(1, 100, 60),
		on(1, 100, 72),
		off(1, 300, 72),
	}
	ns := Extract(events)
	SortByStart(ns)

	want := []Note{
		{Track: 1, TrackName: "piano", StartTick: 0, Length: 100, Pitch: 60, Velocity: 80},
		{Track: 1, TrackName: "piano", StartTick: 100, Length: 200, Pitch: 72, Velocity: 80},
	}
	if len(ns) != len(want) {
		t.Fatalf("got %v", ns)
	}
	for i := range want {
		if ns[i] != want[i] {
			t.Errorf("note %d = %+v, want %+v", i, ns[i], want[i])
		}
	}
}

func TestSortByStart(t *testing.T) {
	ns := []Note{
		{Track: 2, StartTick: 10, Pitch: 50},
		{Track: 1, StartTick: 10, Pitch: 70},
		{Track: 1, StartTick: 10, Pitch: 60},
		{Track: 1, StartTick: 0, Pitch: 90},
	}
	SortByStart(ns)
	want := []Note{
		{Track: 1, StartTick: 0, Pitch: 90},
		{Track: 1, StartTick: 10, Pitch: 60},
		{Track: 1, StartTick: 10, Pitch: 70},
		{Track: 2, StartTick: 10, Pitch: 50},
	}
	for i := range want {
		if ns[i] != want[i] {
			t.Errorf("index %d = %+v, want %+v", i, ns[i], want[i])
		}
	}
}
