// Package constant provides shared constant values used across the engine.
//
// Keep this package free of runtime behavior.
package constant
