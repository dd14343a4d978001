package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunsWhenDue(t *testing.T) {
	s := New()
	var runs int
	task := s.AddDelayed(func() { runs++ }, 80)

	s.Update(50)
	assert.Zero(t, runs)
	assert.Equal(t, 1, s.Pending())

	s.Update(30)
	assert.Equal(t, 1, runs)
	assert.True(t, task.Completed())
	assert.Zero(t, s.Pending())

	s.Update(1000)
	assert.Equal(t, 1, runs, "tasks run once")
	assert.Equal(t, 1080.0, s.Now())
}

func TestCancelBeforeDue(t *testing.T) {
	s := New()
	var runs int
	task := s.AddDelayed(func() { runs++ }, 10)
	task.Cancel()

	s.Update(100)
	assert.Zero(t, runs)
	assert.True(t, task.Cancelled())
	assert.False(t, task.Completed())
}

func TestCancelledByEarlierTaskInSameFrame(t *testing.T) {
	s := New()
	var order []string
	var second *Task
	s.AddDelayed(func() {
		order = append(order, "first")
		second.Cancel()
	}, 10)
	second = s.AddDelayed(func() { order = append(order, "second") }, 20)

	s.Update(50)
	assert.Equal(t, []string{"first"}, order)
}

func TestRunsInDueOrder(t *testing.T) {
	s := New()
	var order []int
	s.AddDelayed(func() { order = append(order, 3) }, 30)
	s.AddDelayed(func() { order = append(order, 1) }, 10)
	s.AddDelayed(func() { order = append(order, 2) }, 10)

	s.Update(30)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestRearmDoesNotRunInSameFrame(t *testing.T) {
	s := New()
	var runs int
	var fire func()
	fire = func() {
		runs++
		s.AddDelayed(fire, 0)
	}
	s.AddDelayed(fire, 0)

	s.Update(16)
	assert.Equal(t, 1, runs)
	s.Update(16)
	assert.Equal(t, 2, runs)
}

func TestClear(t *testing.T) {
	s := New()
	var runs int
	task := s.AddDelayed(func() { runs++ }, 5)
	s.Clear()

	s.Update(10)
	assert.Zero(t, runs)
	assert.True(t, task.Cancelled())

	var nilTask *Task
	nilTask.Cancel()
	assert.False(t, nilTask.Cancelled())
}
