package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/polysim/internal/config"
	"github.com/san-kum/polysim/internal/kinetics"
)

const sliderWidth = 20

// Dashboard is the interactive reaction kinetics view. Every slider change
// recomputes all species before the next key is handled.
type Dashboard struct {
	sim     *kinetics.Simulator
	sliders []config.Slider
	initial kinetics.Params
	params  kinetics.Params
	cursor  int
	runs    []kinetics.Run
	err     error
	width   int
	height  int
}

func NewDashboard(sim *kinetics.Simulator, p kinetics.Params) Dashboard {
	d := Dashboard{
		sim:     sim,
		sliders: config.ReactionSliders,
		initial: p,
		params:  p,
		width:   100,
		height:  30,
	}
	d.recompute()
	return d
}

func (d Dashboard) Params() kinetics.Params { return d.params }

func (d Dashboard) Runs() []kinetics.Run { return d.runs }

func (d Dashboard) Err() error { return d.err }

func (d Dashboard) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return d, tea.Quit
		case "up", "k":
			d.cursor = (d.cursor + len(d.sliders) - 1) % len(d.sliders)
		case "down", "j", "tab":
			d.cursor = (d.cursor + 1) % len(d.sliders)
		case "right", "l":
			d.nudge(1)
		case "left", "h":
			d.nudge(-1)
		case "r":
			d.params = d.initial
			d.recompute()
		case "t":
			CurrentTheme = NextTheme(CurrentTheme.Name)
		}
	}
	return d, nil
}

func (d *Dashboard) nudge(steps int) {
	s := d.sliders[d.cursor]
	cur := d.params.GetParams()[s.Name]
	next := s.Nudge(cur, steps)
	if next == cur {
		return
	}
	if err := d.params.SetParam(s.Name, next); err != nil {
		d.err = err
		return
	}
	d.recompute()
}

func (d *Dashboard) recompute() {
	runs, err := d.sim.Run(context.Background(), d.params)
	d.err = err
	if err == nil {
		d.runs = runs
	}
}

func (d Dashboard) View() string {
	var s strings.Builder
	s.WriteString(titleStyle().Render("POLYMERIZATION REACTION KINETICS") + "\n\n")

	values := d.params.GetParams()
	for i, sl := range d.sliders {
		v := values[sl.Name]
		pos := (v - sl.Min) / (sl.Max - sl.Min)
		line := fmt.Sprintf("%-20s %s %.4g", sl.Label, SliderBar(pos, sliderWidth), v)
		if i == d.cursor {
			s.WriteString(activeStyle().Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle().Render(line) + "\n")
		}
	}
	s.WriteString(labelStyle().Render(fmt.Sprintf("  C0 %g mol/L, %g s", d.params.InitialConcentration, d.params.TotalTime)) + "\n")
	controls := panelStyle.Render(s.String())

	var body string
	if d.err != nil {
		body = errorStyle().Render("error: " + d.err.Error())
	} else {
		plotWidth := d.width - 20
		if plotWidth < 40 {
			plotWidth = 40
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			PlotRuns(d.runs, plotWidth, 12),
			"",
			RunTable(d.runs, d.params.GelPoint),
		)
	}

	help := labelStyle().Render("up/down select  left/right adjust  r reset  t theme (" + CurrentTheme.Name + ")  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, controls, valueStyle().Render(body), help)
}
