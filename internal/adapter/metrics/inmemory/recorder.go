package inmemory

import "sync"

type Snapshot struct {
	ActionTotal  uint64            `json:"action_total"`
	DayAdvances  uint64            `json:"day_advances"`
	Conflicts    uint64            `json:"conflicts"`
	Failures     uint64            `json:"failures"`
	ByActionType map[string]uint64 `json:"by_action_type"`
}

type Recorder struct {
	mu          sync.Mutex
	actions     uint64
	dayAdvances uint64
	conflicts   uint64
	failures    uint64
	byAction    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(actionType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions++
	r.byAction[actionType]++
}

func (r *Recorder) RecordDayAdvance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dayAdvances++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionTotal:  r.actions,
		DayAdvances:  r.dayAdvances,
		Conflicts:    r.conflicts,
		Failures:     r.failures,
		ByActionType: make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ByActionType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
