package export

import (
	"github.com/atotto/clipboard"

	"gridd/scene"
)

// CopyToClipboard exports the scene and places the result on the system
// clipboard. Plain text is the usual choice; pasting ANSI sequences into
// most targets is rarely what anyone wants.
func CopyToClipboard(e Exporter, s *scene.Scene) error {
	out, err := e.Export(s)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(out)
}
