package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time
	lastStep             time.Time
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastStep: now}
}

// Update records a completed generation
func (s *Stats) Update(generation uint64, population int, now time.Time) {
	if elapsed := now.Sub(s.lastStep); elapsed > 0 && generation > s.TotalGenerations {
		s.GenerationsPerSecond = float64(generation-s.TotalGenerations) / elapsed.Seconds()
	}
	s.TotalGenerations = generation
	s.lastStep = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
