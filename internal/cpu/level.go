// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package cpu provides CPU detection functionality for fasthuff.
// It determines how many workers the chunk-parallel codec uses
// when the caller does not configure a count.
package cpu

import "runtime"

// Workers returns the default number of parallel workers.
// It follows GOMAXPROCS so that a process restricted with
// runtime.GOMAXPROCS or the GOMAXPROCS environment variable
// does not oversubscribe its CPUs.
func Workers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
