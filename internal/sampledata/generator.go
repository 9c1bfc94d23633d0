// Package sampledata produces synthetic figures for demo and development
// environments. Nothing in production wiring constructs a Generator unless
// SAMPLE_DATA is set.
package sampledata

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/supplyline/supplyline/internal/forecast"
)

// HistoryLength is the number of synthetic sales periods generated.
const HistoryLength = 6

// Driver is a last-mile courier.
type Driver struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Position is a WGS84 coordinate.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Tracking is a simulated courier state for one delivery.
type Tracking struct {
	Driver     Driver
	Status     string
	ETAMinutes int
	Location   Position
}

const statusDelivered = "Delivered"

var drivers = []Driver{
	{Name: "Alex Green", Avatar: "https://i.pravatar.cc/150?img=1"},
	{Name: "Maria Rodriguez", Avatar: "https://i.pravatar.cc/150?img=2"},
	{Name: "David Chen", Avatar: "https://i.pravatar.cc/150?img=3"},
	{Name: "Fatima Al-Jamil", Avatar: "https://i.pravatar.cc/150?img=4"},
}

var transitStatuses = []string{"In Transit", "Delayed", "Nearing Destination", statusDelivered}

// depot anchors simulated courier positions.
var depot = Position{Lat: 34.0522, Lng: -118.2437}

// Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator. A zero seed picks a random one.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// between returns a value in [lo, hi).
func (g *Generator) between(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.IntN(hi-lo)
}

func (g *Generator) float() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// SalesHistory returns six periods labelled "Month 1".."Month 6" with sales in [50, 200).
func (g *Generator) SalesHistory() []forecast.Point {
	out := make([]forecast.Point, HistoryLength)
	for i := range out {
		out[i] = forecast.Point{
			Period: fmt.Sprintf("Month %d", i+1),
			Sales:  int64(g.between(50, 200)),
		}
	}
	return out
}

// Confidence returns an insight confidence percentage in [85, 98).
func (g *Generator) Confidence() int {
	return g.between(85, 98)
}

// Restock returns a monthly restock estimate in [20, 80).
func (g *Generator) Restock() int64 {
	return int64(g.between(20, 80))
}

// Track simulates the courier state of a delivery.
func (g *Generator) Track() Tracking {
	t := Tracking{
		Driver: drivers[g.between(0, len(drivers))],
		Status: transitStatuses[g.between(0, len(transitStatuses))],
	}
	if t.Status != statusDelivered {
		t.ETAMinutes = g.between(5, 61)
	}
	t.Location = Position{
		Lat: depot.Lat + (g.float()-0.5)*0.1,
		Lng: depot.Lng + (g.float()-0.5)*0.1,
	}
	return t
}
