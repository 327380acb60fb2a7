package evaluation

import "github.com/jonesrussell/screensift/internal/domain"

// ConfusionMatrix counts (true label, predicted label) pairs over the four
// labels. Cells only ever increment; the sum of all cells always equals the
// number of classified samples that fed it.
type ConfusionMatrix struct {
	cells map[domain.Label]map[domain.Label]int
}

func NewConfusionMatrix() *ConfusionMatrix {
	cells := make(map[domain.Label]map[domain.Label]int, len(domain.Labels()))
	for _, t := range domain.Labels() {
		cells[t] = make(map[domain.Label]int, len(domain.Labels()))
	}
	return &ConfusionMatrix{cells: cells}
}

// Add increments the (trueLabel, predicted) cell.
func (m *ConfusionMatrix) Add(trueLabel, predicted domain.Label) {
	m.cells[trueLabel][predicted]++
}

// Count returns one cell.
func (m *ConfusionMatrix) Count(trueLabel, predicted domain.Label) int {
	return m.cells[trueLabel][predicted]
}

// Merge adds every cell of other into m. Per-worker partial matrices reduce
// into the final matrix this way; addition makes the result independent of
// how samples were distributed across workers.
func (m *ConfusionMatrix) Merge(other *ConfusionMatrix) {
	for _, t := range domain.Labels() {
		for _, p := range domain.Labels() {
			m.cells[t][p] += other.cells[t][p]
		}
	}
}

// Total returns the sum of all cells.
func (m *ConfusionMatrix) Total() int {
	n := 0
	for _, t := range domain.Labels() {
		for _, p := range domain.Labels() {
			n += m.cells[t][p]
		}
	}
	return n
}

// Trace returns the sum of the diagonal, the correctly classified count.
func (m *ConfusionMatrix) Trace() int {
	n := 0
	for _, l := range domain.Labels() {
		n += m.cells[l][l]
	}
	return n
}

// RowSum returns the number of samples whose true label is trueLabel.
func (m *ConfusionMatrix) RowSum(trueLabel domain.Label) int {
	n := 0
	for _, p := range domain.Labels() {
		n += m.cells[trueLabel][p]
	}
	return n
}

// ColSum returns the number of samples predicted as predicted.
func (m *ConfusionMatrix) ColSum(predicted domain.Label) int {
	n := 0
	for _, t := range domain.Labels() {
		n += m.cells[t][predicted]
	}
	return n
}
