// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses comma-separated lists from query parameters and
// environment settings, e.g. ?keys=CZ,EN or EXTRA_ORIGINS.
package query

import (
	"strings"
)

// StringSlice splits val on commas, trimming values and dropping empty ones.
// It returns nil for an empty list.
func StringSlice(val string) []string {
	var res []string
	for v := range strings.SplitSeq(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// UpperSlice is [StringSlice] with every value upper-cased, for register keys.
func UpperSlice(val string) []string {
	res := StringSlice(val)
	for i, v := range res {
		res[i] = strings.ToUpper(v)
	}
	return res
}
