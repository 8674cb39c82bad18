package entity

// Chat is one conversation attached to a task or project.
type Chat struct {
	ID       string
	Title    string
	TaskID   string
	Pinned   bool
	Archived bool
}

// ChatSnapshot is one backend observation of the chat set.
type ChatSnapshot struct {
	Chats   []Chat
	Current string
}

// ChatStore holds the chat set the UI renders and builds menus from.
type ChatStore interface {
	Chats() []Chat
	SetChats([]Chat)
	Current() string
	SetCurrent(string)
	Find(id string) (Chat, bool)
}

type chatStore struct {
	chats   []Chat
	current string
}

func NewChatStore() ChatStore {
	return &chatStore{}
}

func (s *chatStore) Chats() []Chat {
	return cloneChats(s.chats)
}

func (s *chatStore) SetChats(chats []Chat) {
	s.chats = cloneChats(chats)
}

func (s *chatStore) Current() string {
	return s.current
}

func (s *chatStore) SetCurrent(current string) {
	s.current = current
}

func (s *chatStore) Find(id string) (Chat, bool) {
	for _, c := range s.chats {
		if c.ID == id {
			return c, true
		}
	}
	return Chat{}, false
}

func cloneChats(chats []Chat) []Chat {
	if len(chats) == 0 {
		return nil
	}
	dup := make([]Chat, len(chats))
	copy(dup, chats)
	return dup
}
