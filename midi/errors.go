package midi

import "errors"

// ErrInvalidMIDI is wrapped by every error caused by an unparseable file.
var ErrInvalidMIDI = errors.New("invalid midi file")
