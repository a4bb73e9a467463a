package monitor

var (
	Preview = preview
	Clip    = clip
)
