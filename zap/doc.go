// Package zap provides the zap-backed implementation of the log abstraction.
//
// It bridges the log.Logger interface to go.uber.org/zap while preserving
// structured fields and environment-based logger profiles.
package zap
