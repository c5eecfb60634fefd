// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

// Package app implements the interactive vault application runtime.
//
// It wires storage, the encryption session, services, background workers and
// the terminal UI into a single process lifecycle.
package app
