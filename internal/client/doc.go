// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, the local cache, and background
// refresh workers into a single process lifecycle.
package client
