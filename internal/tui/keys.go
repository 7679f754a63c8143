package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the grid key bindings. It implements help.KeyMap.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Tap    key.Binding
	Cone   key.Binding
	Switch key.Binding
	Load   key.Binding
	First  key.Binding
	Second key.Binding
	Tie    key.Binding
	Unset  key.Binding
	Score  key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Tap:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "tap (twice: cone)")),
		Cone:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle cone")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch grid")),
		Load:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "load range")),
		First:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "row rank favors first")),
		Second: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "row rank favors second")),
		Tie:    key.NewBinding(key.WithKeys("="), key.WithHelp("=", "row rank tied")),
		Unset:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "clear guess")),
		Score:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "score guesses")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Cone, k.Switch, k.Load, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Tap, k.Cone, k.Switch, k.Load},
		{k.First, k.Second, k.Tie, k.Unset},
		{k.Score, k.Clear, k.Help, k.Quit},
	}
}
