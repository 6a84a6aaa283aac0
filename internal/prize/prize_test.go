package prize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scims/gpa_prize_tui/internal/roster"
)

func TestPicker_Eligible(t *testing.T) {
	p := NewPicker()

	assert.True(t, p.Eligible(roster.Student{Name: "A", GPA: 4.01}))
	assert.False(t, p.Eligible(roster.Student{Name: "B", GPA: 4.0}))
	assert.False(t, p.Eligible(roster.Student{Name: "C", GPA: 3.9}))
}

func TestPicker_TopRecipients(t *testing.T) {
	p := NewPicker()
	students := roster.ParseLines([]string{"Alice,4.5", "Bob,3.9", "Charlie,4.2"})
	require.Len(t, students, 3)

	winners := p.TopRecipients(students)

	assert.Equal(t, []roster.Student{
		{Name: "Alice", GPA: 4.5},
		{Name: "Charlie", GPA: 4.2},
	}, winners)
}

func TestPicker_TopRecipients_CappedAndSorted(t *testing.T) {
	p := NewPicker()
	winners := p.TopRecipients(roster.Sample())

	require.Len(t, winners, p.MaxRecipients)
	for i := 1; i < len(winners); i++ {
		assert.GreaterOrEqual(t, winners[i-1].GPA, winners[i].GPA)
	}
	assert.Equal(t, "David", winners[0].Name)
	assert.Equal(t, 4.8, winners[0].GPA)
}

func TestPicker_TopRecipients_NeverIncludesThresholdGPA(t *testing.T) {
	p := NewPicker()

	for _, s := range p.TopRecipients(roster.Sample()) {
		assert.NotEqual(t, "Heidi", s.Name)
		assert.Greater(t, s.GPA, p.Threshold)
	}
	for _, s := range p.Alphabetical(roster.Sample()) {
		assert.NotEqual(t, "Heidi", s.Name)
		assert.Greater(t, s.GPA, p.Threshold)
	}
}

func TestPicker_Alphabetical(t *testing.T) {
	p := NewPicker()
	students := []roster.Student{
		{Name: "charlie", GPA: 4.2},
		{Name: "Alice", GPA: 4.5},
		{Name: "Bob", GPA: 3.9},
		{Name: "dave", GPA: 4.6},
	}

	got := p.Alphabetical(students)

	require.Len(t, got, 3)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "charlie", got[1].Name)
	assert.Equal(t, "dave", got[2].Name)
}

func TestPicker_Alphabetical_DoesNotReorderSource(t *testing.T) {
	p := NewPicker()
	students := []roster.Student{
		{Name: "Zoe", GPA: 4.9},
		{Name: "Adam", GPA: 4.1},
		{Name: "Mia", GPA: 4.5},
	}

	_ = p.Alphabetical(students)

	assert.Equal(t, "Zoe", students[0].Name)
	assert.Equal(t, "Adam", students[1].Name)
	assert.Equal(t, "Mia", students[2].Name)
}

func TestPicker_ViewsAreIndependent(t *testing.T) {
	p := NewPicker()
	students := roster.Sample()

	// Either computation order yields the same results.
	alphaFirst := p.Alphabetical(students)
	topAfterAlpha := p.TopRecipients(students)

	topFirst := p.TopRecipients(students)
	alphaAfterTop := p.Alphabetical(students)

	assert.Equal(t, topFirst, topAfterAlpha)
	assert.Equal(t, alphaFirst, alphaAfterTop)
}

func TestPicker_ViewConsistency(t *testing.T) {
	p := NewPicker()
	students := roster.Sample()

	winners := p.TopRecipients(students)
	alphabetical := p.Alphabetical(students)
	count := p.CountEligible(students)

	assert.Equal(t, count, len(alphabetical))
	assert.Equal(t, min(p.MaxRecipients, count), len(winners))

	byName := make(map[string]bool, len(alphabetical))
	for _, s := range alphabetical {
		byName[s.Name] = true
	}
	for _, s := range winners {
		assert.True(t, byName[s.Name], "winner %s missing from alphabetical list", s.Name)
	}
}

func TestPicker_SampleEligibility(t *testing.T) {
	p := NewPicker()
	students := roster.Sample()

	// Alice, Charlie, David, Eve, Grace, Ivan exceed 4.0; Heidi sits on it.
	assert.Equal(t, 6, p.CountEligible(students))

	alphabetical := p.Alphabetical(students)
	var names []string
	for _, s := range alphabetical {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Alice", "Charlie", "David", "Eve", "Grace", "Ivan"}, names)
}

func TestPicker_CustomThresholdAndMax(t *testing.T) {
	p := Picker{Threshold: 3.0, MaxRecipients: 2}
	students := roster.Sample()

	winners := p.TopRecipients(students)
	require.Len(t, winners, 2)
	assert.Equal(t, "David", winners[0].Name)
	assert.Equal(t, "Grace", winners[1].Name)

	assert.Equal(t, 10, p.CountEligible(students))
}

func TestQueue_PopMaxOrder(t *testing.T) {
	q := NewQueue(roster.Sample(), 4.0)

	var gpas []float64
	for {
		s, ok := q.PopMax()
		if !ok {
			break
		}
		gpas = append(gpas, s.GPA)
	}

	require.Len(t, gpas, 6)
	for i := 1; i < len(gpas); i++ {
		assert.GreaterOrEqual(t, gpas[i-1], gpas[i])
	}
}

func TestQueue_EmptyPop(t *testing.T) {
	q := NewQueue(nil, 4.0)

	_, ok := q.PopMax()
	assert.False(t, ok)
}
