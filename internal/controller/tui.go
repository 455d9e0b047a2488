package controller

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/linetally/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	counterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Faint(true)

	colorStyles = map[m.Color]lipgloss.Style{
		m.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		m.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	excludedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program on a background goroutine.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	return t.startWithModel(newScanModel(cfg.mode, cfg.interrupt))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the program exits on its own.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// DisplayScanStarted resets the progress view for a new scan.
func (t *TUI) DisplayScanStarted(root m.Path) {
	t.send(scanStartedMsg{root: string(root)})
}

// DisplayScanProgress shows the folder being scanned.
func (t *TUI) DisplayScanProgress(folder m.Path) {
	t.send(scanProgressMsg{folder: string(folder)})
}

// DisplayScanCompleted shows the outcome; in scan mode this ends the program.
func (t *TUI) DisplayScanCompleted(result m.ScanResult, err error) {
	t.send(scanDoneMsg{result: result, err: err})
}

// DisplaySummary prints the folder table with paths tinted by color tag.
func (t *TUI) DisplaySummary(rows []m.FolderSummary, format CountFormatter) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(t.output, hintStyle.Render("No folders recorded"))
		return err
	}

	_, err := fmt.Fprint(t.output, renderSummary(rows, format, paintRow))

	return err
}

// DisplayExtensions prints the excluded extensions.
func (t *TUI) DisplayExtensions(exts m.ExtensionSet) {
	if len(exts) == 0 {
		_, _ = fmt.Fprintln(t.output, hintStyle.Render("No excluded extensions"))
		return
	}

	for _, ext := range exts {
		_, _ = fmt.Fprintln(t.output, titleStyle.Render(ext))
	}
}

func paintRow(row m.FolderSummary, text string) string {
	if row.Excluded {
		return excludedStyle.Render(text)
	}

	if style, ok := colorStyles[row.Color]; ok {
		return style.Render(text)
	}

	return text
}

// scanModel is the Bubble Tea model showing a running scan.
type scanModel struct {
	spinner    spinner.Model
	mode       StartMode
	interrupt  func()
	root       string
	current    string
	folders    int
	scanning   bool
	cancelling bool
	finished   bool
	result     m.ScanResult
	err        error
	width      int
}

func newScanModel(mode StartMode, interrupt func()) scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = counterStyle

	return scanModel{spinner: s, mode: mode, interrupt: interrupt}
}

func (sm scanModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		return sm, nil

	case tea.KeyMsg:
		return sm.handleKey(msg)

	case scanStartedMsg:
		sm.root = msg.root
		sm.current = ""
		sm.folders = 0
		sm.scanning = true
		sm.finished = false

		return sm, nil

	case scanProgressMsg:
		sm.current = msg.folder
		sm.folders++

		return sm, nil

	case scanDoneMsg:
		sm.scanning = false
		sm.finished = true
		sm.result = msg.result
		sm.err = msg.err

		if sm.mode == ModeScan {
			return sm, tea.Quit
		}

		return sm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm scanModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
	default:
		return sm, nil
	}

	if sm.finished && sm.mode == ModeScan {
		return sm, tea.Quit
	}

	if !sm.cancelling && sm.interrupt != nil {
		sm.interrupt()
	}

	sm.cancelling = true

	// watch mode has no final report to wait for
	if sm.mode == ModeWatch {
		return sm, tea.Quit
	}

	return sm, nil
}

func (sm scanModel) View() string {
	if sm.finished {
		line := describeScan(sm.result, sm.err)

		style := doneStyle
		if sm.err != nil || sm.result.Cancelled {
			style = failStyle
		}

		view := style.Render(line) + "\n"
		if sm.mode == ModeWatch && !sm.cancelling {
			view += hintStyle.Render("watching for changes, q to quit") + "\n"
		}

		return view
	}

	if !sm.scanning {
		return sm.spinner.View() + " " + hintStyle.Render("waiting") + "\n"
	}

	status := "Scanning"
	if sm.cancelling {
		status = "Cancelling"
	}

	header := fmt.Sprintf("%s %s %s  %s folders",
		sm.spinner.View(),
		titleStyle.Render(status),
		sm.root,
		counterStyle.Render(fmt.Sprintf("%d", sm.folders)),
	)

	current := sm.current
	if sm.width > 0 {
		current = truncateLeft(current, sm.width-2)
	}

	return header + "\n" + pathStyle.Render(current) + "\n"
}

// truncateLeft keeps the tail of text, which is the informative end of a path.
func truncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}

	runes := []rune(text)
	if lipgloss.Width(text) <= width || len(runes) <= width {
		return text
	}

	if width <= 3 {
		return string(runes[len(runes)-width:])
	}

	return "..." + string(runes[len(runes)-width+3:])
}
