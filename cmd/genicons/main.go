// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/iconset/internal/icons"
)

func main() { cli.Main(cli.AppFunc(run)) }

func run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: genicons takes no arguments", cli.ErrInvalidArgs)
	}
	return icons.Generate(ctx, &icons.Config{
		Logf: func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		},
	})
}
