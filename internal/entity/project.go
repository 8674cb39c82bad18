package entity

// Project groups tasks under one working directory.
type Project struct {
	ID        string
	Name      string
	Path      string
	Archived  bool
	OpenTasks int
}

// ProjectSnapshot is one backend observation of the project set.
type ProjectSnapshot struct {
	Projects []Project
	Current  string
}

// ProjectStore holds the project set the UI renders and builds menus
// from.
type ProjectStore interface {
	Projects() []Project
	SetProjects([]Project)
	Current() string
	SetCurrent(string)
	Find(id string) (Project, bool)
}

type projectStore struct {
	projects []Project
	current  string
}

func NewProjectStore() ProjectStore {
	return &projectStore{}
}

func (s *projectStore) Projects() []Project {
	return cloneProjects(s.projects)
}

func (s *projectStore) SetProjects(projects []Project) {
	s.projects = cloneProjects(projects)
}

func (s *projectStore) Current() string {
	return s.current
}

func (s *projectStore) SetCurrent(current string) {
	s.current = current
}

func (s *projectStore) Find(id string) (Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func cloneProjects(projects []Project) []Project {
	if len(projects) == 0 {
		return nil
	}
	dup := make([]Project, len(projects))
	copy(dup, projects)
	return dup
}
