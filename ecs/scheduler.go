package ecs

// System advances one concern of the world by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc runs a plain function as a System.
type SystemFunc func(w *World, dt float64)

func (f SystemFunc) Update(w *World, dt float64) {
	f(w, dt)
}

// Scheduler runs its systems in the order they were added and keeps count
// of the simulated frames.
type Scheduler struct {
	systems []System
	frames  uint64
	elapsed float64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(sys System) {
	if sys == nil {
		return
	}
	s.systems = append(s.systems, sys)
}

func (s *Scheduler) Update(w *World, dt float64) {
	for _, sys := range s.systems {
		sys.Update(w, dt)
	}
	s.frames++
	s.elapsed += dt
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}

// Frames is the number of Update calls so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Elapsed is the simulated time in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}
