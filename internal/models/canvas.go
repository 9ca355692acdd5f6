package models

// CanvasFileMeta is the normalized shape of an externally stored canvas
type CanvasFileMeta struct {
	ID        string
	Title     string
	Permalink string
}
