// Package log defines the logging interface and typed logging fields used
// across lib-crypto.
//
// Adapters (such as the zap package) implement Logger so library consumers
// can plug in their own logging backend; NewNop returns a silent default.
package log
