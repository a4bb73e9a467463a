package clipboard

// backend names
const (
	Windows = "win32-listener"
	X11     = "x11-xfixes"
	Wlr     = "wlr-data-control"
	Design  = "golang.design"
	Null    = "null-clipboard"
)
