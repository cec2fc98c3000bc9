package doldoc

// Stream receives styled tokens from the renderer.
type Stream interface {
	WriteToken(StreamToken) error
	// Clear discards everything written since the last Clear.
	Clear() error
	Flush() error
	Width() int
	SetWidth(int)
}
