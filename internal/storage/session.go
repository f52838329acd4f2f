package storage

import "time"

// TimedMove is one committed quarter turn.
type TimedMove struct {
	Time     float64 `json:"time"`
	Move     string  `json:"move"`
	Scramble bool    `json:"scramble"`
}

// Sample is the in-flight angle of the turning slice at a moment.
type Sample struct {
	Time  float64 `json:"time"`
	Angle float64 `json:"angle"`
}

type Session struct {
	Lab     string
	Seed    int64
	Started time.Time
	Solved  bool
	Moves   []TimedMove
	Trace   []Sample
}

// Recorder accumulates a Session frame by frame.
type Recorder struct {
	session Session
	elapsed float64
}

func NewRecorder(lab string, seed int64) *Recorder {
	return &Recorder{session: Session{Lab: lab, Seed: seed, Started: time.Now()}}
}

// Tick advances the recorder clock and samples the current angle.
func (r *Recorder) Tick(dt float64, angle float64) {
	if dt > 0 {
		r.elapsed += dt
	}
	r.session.Trace = append(r.session.Trace, Sample{Time: r.elapsed, Angle: angle})
}

func (r *Recorder) Turn(move string, scramble bool) {
	r.session.Moves = append(r.session.Moves, TimedMove{Time: r.elapsed, Move: move, Scramble: scramble})
}

func (r *Recorder) SetSolved(solved bool) {
	r.session.Solved = solved
}

func (r *Recorder) Elapsed() float64 { return r.elapsed }

// Empty reports whether nothing worth saving happened.
func (r *Recorder) Empty() bool {
	return len(r.session.Moves) == 0
}

func (r *Recorder) Session() *Session {
	s := r.session
	s.Moves = append([]TimedMove(nil), r.session.Moves...)
	s.Trace = append([]Sample(nil), r.session.Trace...)
	return &s
}

// Summary derives the metrics stored alongside a session.
func (s *Session) Summary() map[string]float64 {
	m := map[string]float64{
		"moves":          float64(len(s.Moves)),
		"scramble_moves": 0,
		"duration":       0,
	}
	for _, mv := range s.Moves {
		if mv.Scramble {
			m["scramble_moves"]++
		}
	}
	if n := len(s.Trace); n > 0 {
		m["duration"] = s.Trace[n-1].Time
	}
	if s.Solved {
		m["solved"] = 1
	} else {
		m["solved"] = 0
	}
	return m
}
