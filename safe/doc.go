// Package safe provides arithmetic helpers that make failure modes explicit.
package safe
