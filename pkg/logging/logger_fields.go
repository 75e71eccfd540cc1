package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers for the ranking engine
func Component(name string) Field {
	return String("component", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func SeedID(id string) Field {
	return String("seed_id", id)
}

func NodeCount(n int) Field {
	return Int("node_count", n)
}

func EdgeWeight(w float64) Field {
	return Float64("edge_weight", w)
}

func Iterations(n int) Field {
	return Int("iterations", n)
}

func Converged(ok bool) Field {
	return Bool("converged", ok)
}

func Synergy(z float64) Field {
	return Float64("synergy", z)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
