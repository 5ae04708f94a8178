// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// Report writes one line per result, grouped under a heading per suite,
// followed by a summary line. It returns the number of failed results.
func Report(w io.Writer, results []Result) int {
	suite := ""
	for _, r := range results {
		if r.Suite != suite {
			if suite != "" {
				fmt.Fprintln(w)
			}
			suite = r.Suite
			fmt.Fprintf(w, "--------%s--------\n", suite)
		}
		mark := green("OK!")
		if !r.OK {
			mark = red("NG!")
		}
		fmt.Fprintf(w, "%s : %-22s %10v %10v  x%.2f\n", mark, r.Case, r.Ours, r.Base, r.Ratio())
	}
	failed := Failed(results)
	fmt.Fprintf(w, "\n%d cases, %d failed\n", len(results), failed)
	return failed
}
