// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package source

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// extractKeyOrder parses raw JSON and extracts the order of keys for all "properties" objects.
// Returns a map from JSON path (e.g., "properties", "$defs.address.properties") to ordered keys.
func extractKeyOrder(rawJSON []byte) map[string][]string {
	result := make(map[string][]string)

	var walk func(dec *json.Decoder, path string) bool
	walk = func(dec *json.Decoder, path string) bool {
		token, err := dec.Token()
		if err != nil {
			return false
		}

		delim, ok := token.(json.Delim)
		if !ok {
			return true
		}

		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return false
				}
				key, ok := keyToken.(string)
				if !ok {
					return false
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				if !walk(dec, newPath) {
					return false
				}
			}
			if _, err := dec.Token(); err != nil {
				return false
			}

			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				if !walk(dec, path) {
					return false
				}
			}
			if _, err := dec.Token(); err != nil {
				return false
			}
		}
		return true
	}

	walk(json.NewDecoder(bytes.NewReader(rawJSON)), "")

	return result
}
