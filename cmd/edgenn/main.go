// Package main provides the EdgeNN CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/edgenn-ml/edgenn/nn"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("EdgeNN %s\n", version)
			return
		case "demo":
			runDemo()
			return
		}
	}

	fmt.Println("EdgeNN - Tiny Feedforward Inference for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Classify sample points with a built-in network")
}

// runDemo classifies a few 2-D points with a hand-built 2 → 4 → 2 network
// that separates points above the x0 = x1 diagonal from points below it:
// a hidden pair carries the signed score x0 - x1 through the rectifier.
func runDemo() {
	net, err := nn.NewNetwork(
		nn.Layer{
			Weights: []float32{
				1, -1, 0, 0,
				-1, 1, 0, 0,
			},
			Bias:       make([]float32, 4),
			InputSize:  2,
			OutputSize: 4,
		},
		nn.Layer{
			Weights: []float32{
				1, 0,
				0, 1,
				0, 0,
				0, 0,
			},
			Bias:       make([]float32, 2),
			InputSize:  4,
			OutputSize: 2,
		},
	)
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}

	labels := [2]string{"below diagonal", "above diagonal"}
	points := [][2]float32{
		{2.0, 0.5},
		{0.5, 2.0},
		{-1.0, -3.0},
	}

	probs := make([]float32, net.NumClasses())
	for _, p := range points {
		if err := net.Predict(p[:], probs); err != nil {
			log.Fatalf("Predict failed: %v", err)
		}
		class, err := net.PredictClass(p[:])
		if err != nil {
			log.Fatalf("PredictClass failed: %v", err)
		}
		fmt.Printf("(%5.2f, %5.2f)  p=[%.4f %.4f]  %s\n",
			p[0], p[1], probs[0], probs[1], labels[class])
	}
}
