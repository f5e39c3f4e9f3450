package questions

import (
	"embed"
	"io/fs"
)

//go:embed sets/*.json
var embeddedSets embed.FS

// Embedded returns the bundled sample sets rooted at the sets directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embeddedSets, "sets")
	if err != nil {
		panic(err)
	}
	return sub
}
