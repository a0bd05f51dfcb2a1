// Copyright 2025 The EdgeNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package window maintains a fixed-length sliding window over a stream of
// sensor samples, producing the input vector a Network expects: the most
// recent N samples, oldest first.
package window

import "fmt"

// Window is a fixed-capacity buffer of the most recent samples. Once full,
// each Push discards the oldest sample. Not safe for concurrent use.
type Window struct {
	samples []float32
	filled  int
}

// New creates a window holding the most recent size samples.
func New(size int) (*Window, error) {
	if size < 1 {
		return nil, fmt.Errorf("window: size %d, want >= 1", size)
	}
	return &Window{samples: make([]float32, size)}, nil
}

// Push appends a sample, shifting out the oldest once the window is full.
func (w *Window) Push(v float32) {
	if w.filled < len(w.samples) {
		w.samples[w.filled] = v
		w.filled++
		return
	}
	copy(w.samples, w.samples[1:])
	w.samples[len(w.samples)-1] = v
}

// Full reports whether the window holds size samples, i.e. whether Samples
// is ready to feed a network sized to this window.
func (w *Window) Full() bool {
	return w.filled == len(w.samples)
}

// Len returns the number of samples pushed so far, capped at size.
func (w *Window) Len() int {
	return w.filled
}

// Samples returns the buffered samples oldest first. The slice is a view of
// internal storage, valid until the next Push; copy it to keep it.
func (w *Window) Samples() []float32 {
	return w.samples[:w.filled]
}
