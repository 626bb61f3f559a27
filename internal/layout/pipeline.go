package layout

import "seehuhn.de/go/geom/vec"

// Pipeline runs classification, collision resolution and commit over one frame's raw positions.
type Pipeline struct {
	Boundary   Boundary
	Classifier Classifier
	Committer  Committer
	Resolver   Resolver
}

// NewPipeline creates a Pipeline from a layout config and a resolver.
func NewPipeline(cfg Config, r Resolver) *Pipeline {
	return &Pipeline{
		Boundary:   cfg.Boundary,
		Classifier: NewClassifier(cfg),
		Committer:  NewCommitter(cfg),
		Resolver:   r,
	}
}

// Result is the output of one pipeline run. Assignments and Placements are
// index-aligned with the raw positions the run was given.
type Result struct {
	Assignments []Assignment
	Placements  []Placement
	Buckets     Buckets
	Resolved    Resolved
}

// Run lays out one frame. All bucket state is local to the call.
func (p *Pipeline) Run(raw []vec.Vec2) Result {
	res := Result{
		Assignments: make([]Assignment, len(raw)),
		Placements:  make([]Placement, len(raw)),
	}
	for i, pos := range raw {
		res.Assignments[i] = p.Classifier.Classify(&res.Buckets, pos)
	}
	res.Resolved = res.Buckets.Resolve(p.Resolver, p.Boundary)
	for i, pos := range raw {
		res.Placements[i] = p.Committer.Commit(res.Assignments[i], pos, &res.Resolved)
	}
	return res
}
