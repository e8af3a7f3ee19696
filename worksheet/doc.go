// SPDX-License-Identifier: MIT

// Package worksheet executes a YAML document of named matrices and an ordered
// list of operations over them, the batch form of an interactive matrix
// playground.
//
// A document looks like:
//
//	matrices:
//	  x: [[1, 2], [3, 4]]
//	  w: [[0.5, -1], [1, 0.25]]
//	steps:
//	  - {op: mul, args: [x, w], save: h}
//	  - {op: relu, args: [h]}
//	  - {op: det, args: [x]}
//
// Every step yields a Result. A step with `save` stores its matrix under that
// name; the latest matrix result is always available as "_".
// Step failures are reported as *StepError carrying the step index; the
// underlying matrix sentinels still match with errors.Is.
package worksheet
