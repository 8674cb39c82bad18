package dispatcher

import (
	"github.com/atomicstack/menukit/internal/backend"
	"github.com/atomicstack/menukit/internal/entity"
)

// Result reports which stores an event updated, so the UI can refresh
// only the surfaces that depend on them.
type Result struct {
	TasksUpdated     bool
	ChatsUpdated     bool
	ProjectsUpdated  bool
	WorkflowsUpdated bool
}

// Dispatcher routes backend snapshots into the entity stores.
type Dispatcher struct {
	tasks     entity.TaskStore
	chats     entity.ChatStore
	projects  entity.ProjectStore
	workflows entity.WorkflowStore
}

func New(t entity.TaskStore, c entity.ChatStore, p entity.ProjectStore, w entity.WorkflowStore) *Dispatcher {
	return &Dispatcher{tasks: t, chats: c, projects: p, workflows: w}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindTasks:
		if snapshot, ok := evt.Data.(entity.TaskSnapshot); ok {
			d.tasks.SetTasks(snapshot.Tasks)
			d.tasks.SetCurrent(snapshot.Current)
			res.TasksUpdated = true
		}
	case backend.KindChats:
		if snapshot, ok := evt.Data.(entity.ChatSnapshot); ok {
			d.chats.SetChats(snapshot.Chats)
			d.chats.SetCurrent(snapshot.Current)
			res.ChatsUpdated = true
		}
	case backend.KindProjects:
		if snapshot, ok := evt.Data.(entity.ProjectSnapshot); ok {
			d.projects.SetProjects(snapshot.Projects)
			d.projects.SetCurrent(snapshot.Current)
			res.ProjectsUpdated = true
		}
	case backend.KindWorkflows:
		if snapshot, ok := evt.Data.(entity.WorkflowSnapshot); ok {
			d.workflows.SetWorkflows(snapshot.Workflows)
			d.workflows.SetCurrent(snapshot.Current)
			res.WorkflowsUpdated = true
		}
	}
	return res
}
