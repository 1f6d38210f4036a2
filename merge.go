// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "strings"

// unsetValue removes a property inherited from a more distant file.
const unsetValue = "unset"

// MergeProperties merges property sets in the given order into a new set.
//
// Later sets win on the same name. A value of "unset" (any case) removes
// the name from the result instead of being stored.
func MergeProperties(sets ...Properties) Properties {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make(Properties, total)
	for _, set := range sets {
		for name, value := range set {
			if strings.EqualFold(value, unsetValue) {
				delete(out, name)
				continue
			}

			out[name] = value
		}
	}

	return out
}
