package backend

import (
	"context"
	"math/rand"
	"sync"

	"github.com/atomicstack/menukit/internal/entity"
	"github.com/atomicstack/menukit/internal/trace"
)

// Simulator fabricates a small development workspace and mutates it a
// little on every fetch, so menus built from the stores see the kind of
// churn a real backend would produce: tasks moving through review,
// workflow steps finishing, chats getting pinned. The same seed always
// replays the same history.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand

	tasks     []entity.Task
	chats     []entity.Chat
	projects  []entity.Project
	workflows []entity.Workflow
}

// NewSimulator seeds the fixture workspace.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		rng: rand.New(rand.NewSource(seed)),
		tasks: []entity.Task{
			{ID: "task-auth", Title: "Wire up OAuth login", Status: entity.TaskInProgress},
			{ID: "task-search", Title: "Index project search", Status: entity.TaskTodo},
			{ID: "task-flaky", Title: "Fix flaky watcher test", Status: entity.TaskInReview},
			{ID: "task-docs", Title: "Document embed API", Status: entity.TaskTodo},
			{ID: "task-perf", Title: "Profile render loop", Status: entity.TaskDone},
			{ID: "task-auth-ui", Title: "Login form polish", Status: entity.TaskTodo, ParentID: "task-auth"},
		},
		chats: []entity.Chat{
			{ID: "chat-plan", Title: "Plan OAuth rollout", TaskID: "task-auth", Pinned: true},
			{ID: "chat-impl", Title: "Implement token refresh", TaskID: "task-auth"},
			{ID: "chat-triage", Title: "Triage watcher flake", TaskID: "task-flaky"},
			{ID: "chat-old", Title: "Legacy migration notes", Archived: true},
		},
		projects: []entity.Project{
			{ID: "proj-app", Name: "menukit", Path: "~/src/menukit", OpenTasks: 4},
			{ID: "proj-site", Name: "docs-site", Path: "~/src/docs-site", OpenTasks: 1},
			{ID: "proj-attic", Name: "attic", Path: "~/src/attic", Archived: true},
		},
		workflows: []entity.Workflow{
			{
				ID:   "wf-feature",
				Name: "Feature",
				Steps: []entity.Step{
					{Index: 0, Name: "Plan", Status: entity.StepCompleted, ChatID: "chat-plan"},
					{Index: 1, Name: "Implement", Status: entity.StepRunning, ChatID: "chat-impl"},
					{Index: 2, Name: "Review", Status: entity.StepPending},
					{Index: 3, Name: "Ship", Status: entity.StepPending},
				},
			},
			{
				ID:   "wf-bugfix",
				Name: "Bugfix",
				Steps: []entity.Step{
					{Index: 0, Name: "Reproduce", Status: entity.StepPending},
					{Index: 1, Name: "Fix", Status: entity.StepPending},
					{Index: 2, Name: "Verify", Status: entity.StepPending},
				},
			},
		},
	}
}

// FetchTasks advances the task world a little and returns a snapshot.
func (s *Simulator) FetchTasks(ctx context.Context) (entity.TaskSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.churnTasks()
	snap := entity.TaskSnapshot{Current: "task-auth"}
	snap.Tasks = append(snap.Tasks, s.tasks...)
	trace.Backend.Event(KindTasks.String(), snap.Current)
	return snap, nil
}

// FetchChats returns a snapshot of the chat set.
func (s *Simulator) FetchChats(ctx context.Context) (entity.ChatSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.churnChats()
	snap := entity.ChatSnapshot{Current: "chat-impl"}
	snap.Chats = append(snap.Chats, s.chats...)
	trace.Backend.Event(KindChats.String(), snap.Current)
	return snap, nil
}

// FetchProjects returns a snapshot of the project set.
func (s *Simulator) FetchProjects(ctx context.Context) (entity.ProjectSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := entity.ProjectSnapshot{Current: "proj-app"}
	snap.Projects = append(snap.Projects, s.projects...)
	trace.Backend.Event(KindProjects.String(), snap.Current)
	return snap, nil
}

// FetchWorkflows advances the running workflow occasionally and returns
// a snapshot.
func (s *Simulator) FetchWorkflows(ctx context.Context) (entity.WorkflowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.churnWorkflows()
	snap := entity.WorkflowSnapshot{Current: "wf-feature"}
	for _, w := range s.workflows {
		steps := make([]entity.Step, len(w.Steps))
		copy(steps, w.Steps)
		w.Steps = steps
		snap.Workflows = append(snap.Workflows, w)
	}
	trace.Backend.Event(KindWorkflows.String(), snap.Current)
	return snap, nil
}

// churnTasks nudges one non-terminal task forward roughly every fifth
// fetch.
func (s *Simulator) churnTasks() {
	if s.rng.Intn(5) != 0 {
		return
	}
	active := make([]int, 0, len(s.tasks))
	for i, t := range s.tasks {
		if t.Status.Active() {
			active = append(active, i)
		}
	}
	if len(active) == 0 {
		return
	}
	i := active[s.rng.Intn(len(active))]
	switch s.tasks[i].Status {
	case entity.TaskTodo:
		s.tasks[i].Status = entity.TaskInProgress
	case entity.TaskInProgress:
		s.tasks[i].Status = entity.TaskInReview
	case entity.TaskInReview:
		s.tasks[i].Status = entity.TaskDone
	}
}

func (s *Simulator) churnChats() {
	if s.rng.Intn(8) != 0 {
		return
	}
	i := s.rng.Intn(len(s.chats))
	if !s.chats[i].Archived {
		s.chats[i].Pinned = !s.chats[i].Pinned
	}
}

// churnWorkflows completes the running step of the feature workflow and
// starts the next one, roughly every sixth fetch.
func (s *Simulator) churnWorkflows() {
	if s.rng.Intn(6) != 0 {
		return
	}
	for wi := range s.workflows {
		w := &s.workflows[wi]
		if current, ok := w.CurrentStep(); ok {
			w.CompleteStep(current.Index)
			if next, ok := w.NextPending(); ok {
				w.StartStep(next.Index)
			}
			return
		}
	}
}
