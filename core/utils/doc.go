// Package utils provides common utility functions for the catalog manager.
// It includes tolerant type conversions used when decoding loosely typed
// feed payloads, where numbers arrive as strings and codes arrive as numbers.
package utils
