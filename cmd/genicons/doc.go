// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Genicons generates web app manifest icons.

# Usage

	$ go tool genicons

Genicons reads "icons/icon.png" and writes resized copies of it to the
"icons" directory, one for each of the sizes 72, 96, 128, 144, 152, 192,
384 and 512:

	icons/icon-72x72.png
	icons/icon-96x96.png
	...
	icons/icon-512x512.png

Icons are always square. Existing icons are overwritten. The "icons"
directory is created if it doesn't exist.

Genicons stops at the first error; icons written before it are kept.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
