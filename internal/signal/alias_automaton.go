package signal

// acMatcher is a small Aho–Corasick automaton over bytes, used to resolve
// alias surface forms at word boundaries in O(len(text)).
type acMatcher struct {
	nodes   []acNode
	lengths []int    // pattern index -> byte length of the pattern
	labels  []string // pattern index -> canonical entity name
	built   bool
}

type acNode struct {
	children map[byte]int
	fail     int
	output   []int // pattern indices ending at this node
}

func newACMatcher() *acMatcher {
	return &acMatcher{nodes: []acNode{{children: map[byte]int{}}}}
}

// add registers a pattern (already lowercased) against a canonical label.
func (m *acMatcher) add(pattern, label string) {
	if pattern == "" {
		return
	}
	cur := 0
	for i := 0; i < len(pattern); i++ {
		b := pattern[i]
		next, ok := m.nodes[cur].children[b]
		if !ok {
			m.nodes = append(m.nodes, acNode{children: map[byte]int{}})
			next = len(m.nodes) - 1
			m.nodes[cur].children[b] = next
		}
		cur = next
	}
	idx := len(m.lengths)
	m.lengths = append(m.lengths, len(pattern))
	m.labels = append(m.labels, label)
	m.nodes[cur].output = append(m.nodes[cur].output, idx)
}

// gotoState finds the state reached from state on byte b, falling back
// through failure links the same way match-time traversal does.
func (m *acMatcher) gotoState(state int, b byte) int {
	for {
		if next, ok := m.nodes[state].children[b]; ok {
			return next
		}
		if state == 0 {
			return 0
		}
		state = m.nodes[state].fail
	}
}

// build computes failure links via BFS, merging failure-node outputs so a
// single pass at match time sees every pattern ending at the current node.
func (m *acMatcher) build() {
	if m.built {
		return
	}
	m.built = true

	queue := make([]int, 0, len(m.nodes))
	for _, child := range m.nodes[0].children {
		m.nodes[child].fail = 0
		queue = append(queue, child)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for b, v := range m.nodes[u].children {
			fail := m.gotoState(m.nodes[u].fail, b)
			m.nodes[v].fail = fail
			m.nodes[v].output = append(m.nodes[v].output, m.nodes[fail].output...)
			queue = append(queue, v)
		}
	}
}

// match runs the automaton over lower (already lowercased) and returns the
// set of canonical labels whose surface form matched at a word boundary.
func (m *acMatcher) match(lower string) map[string]bool {
	hits := map[string]bool{}
	if len(m.nodes) == 1 {
		return hits
	}

	cur := 0
	for i := 0; i < len(lower); i++ {
		cur = m.gotoState(cur, lower[i])

		for _, patIdx := range m.nodes[cur].output {
			length := m.lengths[patIdx]
			start := i - length + 1
			if start < 0 {
				continue
			}
			if !isWordBoundary(lower, start, i+1) {
				continue
			}
			hits[m.labels[patIdx]] = true
		}
	}
	return hits
}

func isWordBoundary(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}
