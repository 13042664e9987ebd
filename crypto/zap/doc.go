// Package zap provides a go.uber.org/zap backed implementation of the
// lib-crypto log.Logger interface.
//
// The adapter profiles the underlying zap configuration by deployment
// environment, exposes a runtime-adjustable level handle, correlates log
// entries with the active OpenTelemetry span when one is carried by the
// context, and redacts fields whose names look sensitive.
package zap
