package entity

import "fmt"

// TaskStatus is the lifecycle position of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "inprogress"
	TaskInReview   TaskStatus = "inreview"
	TaskDone       TaskStatus = "done"
	TaskCancelled  TaskStatus = "cancelled"
)

// Terminal reports whether the task can no longer change status.
func (s TaskStatus) Terminal() bool {
	return s == TaskDone || s == TaskCancelled
}

// Active reports whether work on the task is still possible.
func (s TaskStatus) Active() bool {
	return !s.Terminal()
}

// ParseTaskStatus accepts the canonical lowercase form plus the usual
// separator variants.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch s {
	case "todo":
		return TaskTodo, nil
	case "inprogress", "in_progress", "in-progress":
		return TaskInProgress, nil
	case "inreview", "in_review", "in-review":
		return TaskInReview, nil
	case "done", "completed":
		return TaskDone, nil
	case "cancelled", "canceled":
		return TaskCancelled, nil
	}
	return "", fmt.Errorf("invalid task status %q", s)
}

// Task is one unit of work within a project. Sub-tasks point at their
// parent through ParentID.
type Task struct {
	ID       string
	Title    string
	Status   TaskStatus
	ParentID string
}

// TaskSnapshot is one backend observation of the task set.
type TaskSnapshot struct {
	Tasks   []Task
	Current string
}

// TaskStore holds the task set the UI renders and builds menus from.
type TaskStore interface {
	Tasks() []Task
	SetTasks([]Task)
	Current() string
	SetCurrent(string)
	Find(id string) (Task, bool)
}

type taskStore struct {
	tasks   []Task
	current string
}

func NewTaskStore() TaskStore {
	return &taskStore{}
}

func (s *taskStore) Tasks() []Task {
	return cloneTasks(s.tasks)
}

func (s *taskStore) SetTasks(tasks []Task) {
	s.tasks = cloneTasks(tasks)
}

func (s *taskStore) Current() string {
	return s.current
}

func (s *taskStore) SetCurrent(current string) {
	s.current = current
}

func (s *taskStore) Find(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func cloneTasks(tasks []Task) []Task {
	if len(tasks) == 0 {
		return nil
	}
	dup := make([]Task, len(tasks))
	copy(dup, tasks)
	return dup
}
