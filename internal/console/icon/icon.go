package icon

import _ "embed"

var (
	//go:embed "clip.ico"
	ICO []byte

	//go:embed "clip.png"
	PNG []byte
)
