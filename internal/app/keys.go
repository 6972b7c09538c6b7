package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the board view key bindings
type keyMap struct {
	NextBoard   key.Binding
	PrevBoard   key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Toggle      key.Binding
	AddTask     key.Binding
	EditTask    key.Binding
	DeleteTask  key.Binding
	AddBoard    key.Binding
	EditBoard   key.Binding
	DeleteBoard key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextBoard:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next board")),
		PrevBoard:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev board")),
		Left:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "column left")),
		Right:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "column right")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "task up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "task down")),
		MoveLeft:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "move to prev column")),
		MoveRight:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "move to next column")),
		MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle subtask")),
		AddTask:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		EditTask:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit task")),
		DeleteTask:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete task")),
		AddBoard:    key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "add board")),
		EditBoard:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit board")),
		DeleteBoard: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete board")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBoard, k.MoveRight, k.Toggle, k.AddTask, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextBoard, k.PrevBoard, k.Left, k.Right, k.Up, k.Down},
		{k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown, k.Toggle},
		{k.AddTask, k.EditTask, k.DeleteTask},
		{k.AddBoard, k.EditBoard, k.DeleteBoard, k.Help, k.Quit},
	}
}
