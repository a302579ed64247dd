package extract

import "strings"

// blockState is the state of the project accumulator between lines.
type blockState int

const (
	stateIdle blockState = iota
	stateCollecting
)

// blockAccumulator accretes contiguous keyword-matching lines into project
// blocks. A block terminates when a non-matching line is seen; a trailing
// block at end of input is emitted by flush.
type blockAccumulator struct {
	state  blockState
	lines  []string
	blocks []string
}

// feed transitions the accumulator for one line.
func (a *blockAccumulator) feed(line string, matched bool) {
	switch a.state {
	case stateIdle:
		if matched {
			a.state = stateCollecting
			a.lines = append(a.lines, strings.TrimSpace(line))
		}
	case stateCollecting:
		if matched {
			a.lines = append(a.lines, strings.TrimSpace(line))
		} else {
			a.flush()
		}
	}
}

// flush emits the current block, if any, and returns to idle.
func (a *blockAccumulator) flush() {
	if len(a.lines) > 0 {
		a.blocks = append(a.blocks, strings.Join(a.lines, " "))
		a.lines = nil
	}
	a.state = stateIdle
}

// Projects splits the document into lines and accretes runs of lines that
// contain any project-indicating keyword (case-insensitive substring match)
// into whitespace-joined, trimmed blocks, returned in document order.
func Projects(text string, keywords []string) []string {
	acc := &blockAccumulator{blocks: []string{}}

	for _, line := range strings.Split(text, "\n") {
		acc.feed(line, lineMatchesAny(line, keywords))
	}
	acc.flush()

	return acc.blocks
}

func lineMatchesAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
