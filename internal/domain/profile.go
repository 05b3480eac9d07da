package domain

import (
	"encoding/json"
	"time"
)

// RunProfile times the stages of one rebalance cycle. Owned by a
// single goroutine; stages are recorded sequentially as the pipeline
// moves through them.
type RunProfile struct {
	Stages  []*Stage `json:"stages"`
	TotalMs *int64   `json:"totalMs"`

	startTs time.Time
}

type Stage struct {
	Name      string `json:"name"`
	ElapsedMs *int64 `json:"elapsedMs"`

	startTs time.Time
}

func NewRunProfile() *RunProfile {
	return &RunProfile{
		Stages:  []*Stage{},
		startTs: time.Now(),
	}
}

// StartStage ends the previous stage and begins a new one.
func (p *RunProfile) StartStage(name string) {
	if len(p.Stages) > 0 {
		p.Stages[len(p.Stages)-1].end()
	}
	p.Stages = append(p.Stages, &Stage{
		Name:    name,
		startTs: time.Now(),
	})
}

// End closes the open stage and the profile. Idempotent.
func (p *RunProfile) End() {
	if len(p.Stages) > 0 {
		p.Stages[len(p.Stages)-1].end()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

func (s *Stage) end() {
	if s.ElapsedMs == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.ElapsedMs = &t
	}
}

func (p *RunProfile) ToJsonBytes() ([]byte, error) {
	return json.Marshal(p)
}
