// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package app

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run starts the application and blocks until exit.
	Run() error
}
