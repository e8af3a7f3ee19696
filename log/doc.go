// SPDX-License-Identifier: MIT

// Package log is the leveled logger shared by the matrixlab commands and the
// worksheet runner. It keeps a single package-level unilogger.LeveledLogger;
// until Default, New or SetLogger is called every helper is a no-op, so
// library code may log unconditionally.
//
// The matrix package itself never logs.
package log
