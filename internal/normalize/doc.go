// Package normalize turns raw content API payloads into presentation-ready
// view models. Every function is pure: inputs are never mutated and malformed
// fields degrade to empty values, a default icon or the raw string.
package normalize
