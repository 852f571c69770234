package tracer

import (
	"testing"
	"time"
)

func TestNaiveScheduler(t *testing.T) {
	type spec struct {
		speed1    uint32
		speed2    uint32
		batchSize uint32
		expCount1 uint32
		expCount2 uint32
	}
	specs := []spec{
		{1, 2, 10, 4, 6},
		{2, 1, 10, 7, 3},
		{1, 1000, 10, 1, 9},
	}

	for index, s := range specs {
		tr1 := makeMockTracer("mock-1", s.speed1)
		tr2 := makeMockTracer("mock-2", s.speed2)
		tracers := []Tracer{tr1, tr2}

		sch := NaiveScheduler()
		assignment := sch.Schedule(tracers, s.batchSize)

		if assignment[0] != s.expCount1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d photons; got %d", index, s.expCount1, assignment[0])
		}

		if assignment[1] != s.expCount2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d photons; got %d", index, s.expCount2, assignment[1])
		}
	}
}

func TestPerfectScheduler(t *testing.T) {
	type spec struct {
		batchSize uint32
		tTime1    time.Duration
		tTime2    time.Duration
		expCount1 uint32
		expCount2 uint32
	}
	specs := []spec{
		// First call always behaves like the naive scheduler
		{10, time.Duration(1), time.Duration(5), 5, 5},
		// Second call should use the trace times to assign slots
		{10, time.Duration(1), time.Duration(5), 9, 1},
		// This time tracer 2 performed much better
		{10, time.Duration(5), time.Duration(1), 7, 3},
	}

	// Tracers have same speed
	tr1 := makeMockTracer("mock-1", 1)
	tr2 := makeMockTracer("mock-2", 1)
	tracers := []Tracer{tr1, tr2}

	sch := PerfectScheduler()
	for index, s := range specs {
		tr1.stats.TraceTime = s.tTime1
		tr2.stats.TraceTime = s.tTime2

		assignment := sch.Schedule(tracers, s.batchSize)

		if assignment[0] != s.expCount1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d photons; got %d", index, s.expCount1, assignment[0])
		}

		if assignment[1] != s.expCount2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d photons; got %d", index, s.expCount2, assignment[1])
		}

		tr1.stats.Count = assignment[0]
		tr2.stats.Count = assignment[1]
	}
}

type mockTracer struct {
	id    string
	speed uint32
	stats *Stats
}

func makeMockTracer(id string, speed uint32) *mockTracer {
	return &mockTracer{
		id:    id,
		speed: speed,
		stats: &Stats{},
	}
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) Speed() uint32 {
	return mt.speed
}

func (mt *mockTracer) Init() error {
	return nil
}

func (mt *mockTracer) Close() {
}

func (mt *mockTracer) Enqueue(_ BatchRequest) {
}

func (mt *mockTracer) Update(_ UpdateType, _ interface{}) {
}

func (mt *mockTracer) Stats() *Stats {
	return mt.stats
}
