package prize

import (
	"container/heap"

	"github.com/scims/gpa_prize_tui/internal/roster"
)

// Queue is a max-heap of students keyed on GPA, highest first. Students
// with equal GPA come out in whatever order the heap yields; it is
// deterministic for a given input sequence but otherwise arbitrary.
type Queue []roster.Student

func (q Queue) Len() int           { return len(q) }
func (q Queue) Less(i, j int) bool { return q[i].GPA > q[j].GPA }
func (q Queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *Queue) Push(x any) {
	*q = append(*q, x.(roster.Student))
}

func (q *Queue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	*q = old[:n-1]
	return s
}

// NewQueue builds a prize queue holding every student whose GPA strictly
// exceeds the threshold.
func NewQueue(students []roster.Student, threshold float64) *Queue {
	q := &Queue{}
	for _, s := range students {
		if s.GPA > threshold {
			heap.Push(q, s)
		}
	}
	return q
}

// PopMax removes and returns the highest-GPA student in the queue.
func (q *Queue) PopMax() (roster.Student, bool) {
	if q.Len() == 0 {
		return roster.Student{}, false
	}
	return heap.Pop(q).(roster.Student), true
}
