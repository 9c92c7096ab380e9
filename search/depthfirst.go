package search

// stepDepthFirst inspects the top of the stack without popping it
// It pushes the first eligible neighbor, or pops and closes the top when none remain,
// which reproduces recursive visit order one call at a time
func (s *Search) stepDepthFirst() StepResult {
	top, ok := s.open.peek()
	if !ok {
		s.finish(NoPath)
		return StepExhausted
	}
	s.current = top
	s.hasCurrent = true

	if top == s.goalIdx {
		s.closed.Put(top)
		s.expanded++
		s.finish(Found)
		return StepFound
	}

	from := s.grid.PointAt(top)
	for _, d := range s.strat.dirs {
		if s.strat.relax(s, top, from, d) {
			return StepContinuing
		}
	}

	s.open.pop()
	s.closed.Put(top)
	s.expanded++

	if s.open.len() == 0 {
		s.finish(NoPath)
		return StepExhausted
	}
	return StepContinuing
}

// runRecursive drives the depth-first search on the Go call stack
// The frontier stack mirrors the recursion so inspection and step counts match stepDepthFirst
func (s *Search) runRecursive() {
	if s.open.len() == 0 {
		s.steps++
		s.finish(NoPath)
		return
	}
	if !s.visit(s.originIdx) {
		s.finish(NoPath)
	}
}

// visit returns true once the search has terminated (found or aborted)
func (s *Search) visit(idx int) bool {
	from := s.grid.PointAt(idx)
	for {
		if s.maxSteps > 0 && s.steps >= s.maxSteps {
			s.finish(Aborted)
			return true
		}
		s.steps++
		s.current = idx
		s.hasCurrent = true

		if idx == s.goalIdx {
			s.closed.Put(idx)
			s.expanded++
			s.finish(Found)
			return true
		}

		pushed := false
		for _, d := range s.strat.dirs {
			if s.strat.relax(s, idx, from, d) {
				pushed = true
				break
			}
		}
		if !pushed {
			s.open.pop()
			s.closed.Put(idx)
			s.expanded++
			return false
		}

		child, _ := s.open.peek()
		if s.visit(child) {
			return true
		}
	}
}
