package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/roundtrip/pkg/pipeline"
	"github.com/matzehuels/roundtrip/pkg/tsp"
)

// TUI styles.
var (
	tuiBarFilled = lipgloss.NewStyle().Foreground(colorCyan)
	tuiBarEmpty  = lipgloss.NewStyle().Foreground(colorDim)
	tuiBest      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// watchHookEvery is how many iterations pass between TUI updates.
// Updating on every iteration would drown the terminal.
const watchHookEvery = 500

// progressMsg carries a solver snapshot into the TUI.
type progressMsg tsp.Progress

// solveDoneMsg signals pipeline completion.
type solveDoneMsg struct {
	result *pipeline.Result
	err    error
}

// solveModel is the bubbletea model for the live annealing view.
type solveModel struct {
	maxIterations int
	cancel        context.CancelFunc
	started       time.Time

	latest    tsp.Progress
	seen      bool
	cancelled bool

	result *pipeline.Result
	err    error
}

func newSolveModel(cancel context.CancelFunc, maxIterations int) solveModel {
	if maxIterations == 0 {
		maxIterations = tsp.DefaultMaxIterations
	}
	return solveModel{
		maxIterations: maxIterations,
		cancel:        cancel,
		started:       time.Now(),
	}
}

func (m solveModel) Init() tea.Cmd {
	return nil
}

func (m solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// Cancel the search; the solver returns its best tour so far
			// and the done message still arrives.
			m.cancelled = true
			m.cancel()
		}
	case progressMsg:
		m.latest = tsp.Progress(msg)
		m.seen = true
	case solveDoneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m solveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Annealing"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q cancel (keeps the best tour so far)"))
	b.WriteString("\n\n")

	if !m.seen {
		b.WriteString(StyleDim.Render("  warming up..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  " + renderBar(m.latest.Iteration, m.maxIterations, 40))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d/%d", m.latest.Iteration, m.maxIterations)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("best    "), tuiBest.Render(fmt.Sprintf("%.2f", m.latest.Best))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("current "), StyleValue.Render(fmt.Sprintf("%.2f", m.latest.Current))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("temp    "), StyleNumber.Render(fmt.Sprintf("%.4g", m.latest.Temperature))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("accepted"), StyleValue.Render(fmt.Sprintf("%d", m.latest.Accepted))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		StyleDim.Render("elapsed "), StyleValue.Render(time.Since(m.started).Round(time.Millisecond).String())))

	if m.cancelled {
		b.WriteString("\n" + StyleWarning.Render("  cancelling..."))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBar draws a fixed-width progress bar.
func renderBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	return tuiBarFilled.Render(strings.Repeat("█", filled)) +
		tuiBarEmpty.Render(strings.Repeat("░", width-filled))
}

// runSolveTUI executes the pipeline while showing the search live.
// Returns the pipeline result once the program exits.
func runSolveTUI(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSolveModel(cancel, opts.MaxIterations))

	opts.HookEvery = watchHookEvery
	opts.Hook = func(pr tsp.Progress) {
		p.Send(progressMsg(pr))
	}

	go func() {
		result, err := runner.Execute(ctx, opts)
		p.Send(solveDoneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("tui: %w", err)
	}

	m := final.(solveModel)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
