// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses optional numeric query parameters.

Malformed input is treated like absent input. Callers that must tell the two
apart use [strconv] directly.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD parses str, returning def when it is empty or malformed.
func ToIntD(str string, def int) int {
	if v := ToIntPtr(str); v != nil {
		return *v
	}
	return def
}

// ToIntPtr parses str, returning nil when it is empty or malformed.
//
// Used for optional numeric search predicates such as a year filter.
func ToIntPtr(str string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return nil
	}
	return &v
}
