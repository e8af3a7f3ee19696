// SPDX-License-Identifier: MIT

// Package matrixlab is a dense linear-algebra toolkit: a float64 matrix type
// with its algebra, the activations of a small neural-network forward pass,
// and a YAML worksheet runner with a command-line front end.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/          Dense storage, arithmetic, determinant & inverse, reductions, reshape, rendering
//	activation/      ReLU, Sigmoid, Tanh for matrix.Apply and the row-wise SoftmaxRows
//	worksheet/       named matrices + ordered operations decoded from YAML and executed step by step
//	config/          viper-backed settings (log level, solver, size guard, seed) with validation
//	log/             leveled logging on top of uni-logger
//	cmd/matrixcalc/  cobra CLI: `matrixcalc run <worksheet.yaml>`
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := matrix.Inverse(a)
//	fmt.Println(inv)
//	//  0.600000  -0.700000
//	// -0.200000   0.400000
//
// See examples/ for a forward-pass program and sample worksheets.
package matrixlab
