package viz

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/physlab/internal/config"
	"github.com/lmoreno/physlab/internal/physics"
	"github.com/lmoreno/physlab/internal/sim"
)

var demoInfo = map[string]string{
	"pendulum":    "small-angle SHM",
	"incline":     "sliding block with friction",
	"projectile":  "ballistic trajectory",
	"uniform":     "constant velocity",
	"accelerated": "uniform acceleration",
	"wave":        "traveling wave",
	"particles":   "charged n-body",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

type app struct {
	state  int
	cursor int
	demos  []string

	selected    string
	sys         sim.System
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	live Live
	fps  int
}

// NewApp builds the interactive demo browser.
func NewApp(fps int) *app {
	return &app{
		state: stateMenu,
		demos: physics.Names(),
		fps:   fps,
	}
}

// RunInteractive launches the full-screen demo browser.
func RunInteractive(fps int) error {
	_, err := tea.NewProgram(NewApp(fps), tea.WithAltScreen()).Run()
	return err
}

// RunLive launches a single demo directly.
func RunLive(name string, sys sim.System, fps int) error {
	_, err := tea.NewProgram(NewLive(name, sys, fps), tea.WithAltScreen()).Run()
	return err
}

func (a *app) Init() tea.Cmd { return nil }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch a.state {
		case stateMenu:
			return a.menuKey(key)
		case stateConfig:
			return a.configKey(key)
		}
	}

	if a.state == stateSim {
		// back out of a finished or quit live view with esc
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			a.state = stateMenu
			return a, nil
		}
		next, cmd := a.live.Update(msg)
		a.live = next.(Live)
		return a, cmd
	}
	return a, nil
}

func (a *app) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.demos)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.selected = a.demos[a.cursor]
		sys, err := physics.New(a.selected)
		if err != nil {
			return a, nil
		}
		a.sys = sys
		a.paramNames = sortedParamNames(sys)
		a.paramCursor = 0
		a.state = stateConfig
	}
	return a, nil
}

func sortedParamNames(sys sim.System) []string {
	c, ok := sys.(sim.Configurable)
	if !ok {
		return nil
	}
	names := make([]string, 0)
	for name := range c.Params() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *app) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		return a.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.paramNames)-1 {
			a.paramCursor++
		}
	case "e":
		a.editing = true
		a.editBuf = ""
	case "enter", " ":
		a.live = NewLive(a.selected, a.sys, a.fps)
		a.state = stateSim
		return a, a.live.Init()
	}
	return a, nil
}

func (a *app) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var v float64
		if _, err := fmt.Sscanf(a.editBuf, "%f", &v); err == nil {
			name := a.paramNames[a.paramCursor]
			v = config.Clamp(a.selected, name, v)
			if c, ok := a.sys.(sim.Configurable); ok {
				_ = c.SetParam(name, v)
				a.sys.Reset()
			}
		}
		a.editing, a.editBuf = false, ""
	case "esc":
		a.editing, a.editBuf = false, ""
	case "backspace":
		if len(a.editBuf) > 0 {
			a.editBuf = a.editBuf[:len(a.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == '-') {
			a.editBuf += s
		}
	}
	return a, nil
}

func (a *app) View() string {
	switch a.state {
	case stateMenu:
		return a.menuView()
	case stateConfig:
		return a.configView()
	case stateSim:
		return a.live.View()
	}
	return ""
}

func (a *app) menuView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("physlab") + dimStyle.Render("  interactive physics demos") + "\n\n")

	for i, name := range a.demos {
		line := fmt.Sprintf("  %-12s %s", name, dimStyle.Render(demoInfo[name]))
		if i == a.cursor {
			line = activeStyle.Render("> "+name) + strings.TrimPrefix(line, "  "+name)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(helpStyle.Render("\nj/k move  enter select  q quit"))
	return b.String()
}

func (a *app) configView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("physlab :: "+a.selected) + "\n\n")

	c, _ := a.sys.(sim.Configurable)
	for i, name := range a.paramNames {
		val := fmt.Sprintf("%.2f", c.Params()[name])
		if a.editing && i == a.paramCursor {
			val = a.editBuf + "_"
		}
		if r, ok := config.Ranges[a.selected][name]; ok {
			val += dimStyle.Render(fmt.Sprintf("   [%g .. %g]", r.Min, r.Max))
		}

		line := labelStyle.Render(name) + valueStyle.Render(val)
		if i == a.paramCursor {
			line = activeStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(helpStyle.Render("\nj/k move  e edit  enter start  esc back  q quit"))
	return b.String()
}
