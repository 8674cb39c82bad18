package entity

// StepStatus is the lifecycle position of a workflow step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepSkipped   StepStatus = "skipped"
)

// CanStart reports whether the step is still waiting to begin.
func (s StepStatus) CanStart() bool {
	return s == StepPending
}

// Active reports whether the step is currently being worked on.
func (s StepStatus) Active() bool {
	return s == StepRunning
}

// Complete reports whether the step needs no further work.
func (s StepStatus) Complete() bool {
	return s == StepCompleted || s == StepSkipped
}

// Step is one phase of a workflow. Index is the zero-based position in
// the owning workflow.
type Step struct {
	Index  int
	Name   string
	Status StepStatus
	ChatID string
}

// Workflow is an ordered sequence of steps a task moves through.
type Workflow struct {
	ID    string
	Name  string
	Steps []Step
}

// CurrentStep returns the step being worked on, if any.
func (w Workflow) CurrentStep() (Step, bool) {
	for _, step := range w.Steps {
		if step.Status.Active() {
			return step, true
		}
	}
	return Step{}, false
}

// NextPending returns the first step that has not started.
func (w Workflow) NextPending() (Step, bool) {
	for _, step := range w.Steps {
		if step.Status.CanStart() {
			return step, true
		}
	}
	return Step{}, false
}

// Progress reports completed steps as a percentage of the whole.
func (w Workflow) Progress() int {
	if len(w.Steps) == 0 {
		return 0
	}
	done := 0
	for _, step := range w.Steps {
		if step.Status.Complete() {
			done++
		}
	}
	return done * 100 / len(w.Steps)
}

// StartStep marks a pending step running. Only one step runs at a time,
// so it refuses while another step is active.
func (w *Workflow) StartStep(index int) bool {
	if _, busy := w.CurrentStep(); busy {
		return false
	}
	step := w.step(index)
	if step == nil || !step.Status.CanStart() {
		return false
	}
	step.Status = StepRunning
	return true
}

// CompleteStep marks a running step completed.
func (w *Workflow) CompleteStep(index int) bool {
	step := w.step(index)
	if step == nil || !step.Status.Active() {
		return false
	}
	step.Status = StepCompleted
	return true
}

// SkipStep skips a step that has not completed.
func (w *Workflow) SkipStep(index int) bool {
	step := w.step(index)
	if step == nil || step.Status.Complete() {
		return false
	}
	step.Status = StepSkipped
	return true
}

func (w *Workflow) step(index int) *Step {
	if index < 0 || index >= len(w.Steps) {
		return nil
	}
	return &w.Steps[index]
}

// WorkflowSnapshot is one backend observation of the workflow set.
type WorkflowSnapshot struct {
	Workflows []Workflow
	Current   string
}

// WorkflowStore holds the workflow set the UI renders and builds menus
// from.
type WorkflowStore interface {
	Workflows() []Workflow
	SetWorkflows([]Workflow)
	Current() string
	SetCurrent(string)
	Find(id string) (Workflow, bool)
}

type workflowStore struct {
	workflows []Workflow
	current   string
}

func NewWorkflowStore() WorkflowStore {
	return &workflowStore{}
}

func (s *workflowStore) Workflows() []Workflow {
	return cloneWorkflows(s.workflows)
}

func (s *workflowStore) SetWorkflows(workflows []Workflow) {
	s.workflows = cloneWorkflows(workflows)
}

func (s *workflowStore) Current() string {
	return s.current
}

func (s *workflowStore) SetCurrent(current string) {
	s.current = current
}

func (s *workflowStore) Find(id string) (Workflow, bool) {
	for _, w := range s.workflows {
		if w.ID == id {
			return cloneWorkflow(w), true
		}
	}
	return Workflow{}, false
}

func cloneWorkflows(workflows []Workflow) []Workflow {
	if len(workflows) == 0 {
		return nil
	}
	dup := make([]Workflow, len(workflows))
	for i, w := range workflows {
		dup[i] = cloneWorkflow(w)
	}
	return dup
}

func cloneWorkflow(w Workflow) Workflow {
	steps := make([]Step, len(w.Steps))
	copy(steps, w.Steps)
	w.Steps = steps
	return w
}
