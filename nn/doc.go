// Copyright 2025 The EdgeNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a tiny fixed-topology feedforward inference engine.
//
// # Overview
//
// The engine runs exactly one network family: two dense layers, ReLU after
// the first, softmax after the second. Layer widths are set at construction
// and never change. Weights and biases are caller-owned float32 tables
// referenced, never copied, so a network wraps compile-time constants with
// no startup cost and no per-call allocation.
//
// # Basic Usage
//
//	import "github.com/edgenn-ml/edgenn/nn"
//
//	func main() {
//	    net, err := nn.NewNetwork(
//	        nn.Layer{Weights: l1Weights[:], Bias: l1Bias[:], InputSize: 2, OutputSize: 18},
//	        nn.Layer{Weights: l2Weights[:], Bias: l2Bias[:], InputSize: 18, OutputSize: 3},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    probs := make([]float32, net.NumClasses())
//	    if err := net.Predict([]float32{0.5, 0.5}, probs); err != nil {
//	        log.Fatal(err)
//	    }
//	    class, _ := net.PredictClass([]float32{0.5, 0.5})
//	}
//
// # Weight layout
//
// A weight matrix is flattened row-major as [InputSize][OutputSize]:
// element (i, j) is the coefficient from input neuron i to output neuron j,
// and the forward pass computes output = Wᵗ·input. Weight tables exported
// from a trained Keras/TFLite dense layer already have this layout.
//
// # Concurrency
//
// A Network reuses internal buffers across calls: serialize calls on one
// instance, or give each goroutine its own instance. The parameter tables
// are read-only and safely shared.
package nn
