package formats

import "errors"

var (
	ErrUnsupportedChannels = errors.New("only mono and stereo sources are supported")
)
