package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/JPM1118/sheetcut/internal/notify"
	"github.com/JPM1118/sheetcut/internal/pipeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	colName      = 32
	colKind      = 8
	colStatus    = 12
	defaultWidth = 80
	headerLines  = 4 // header + subheader + column header + separator
	footerLines  = 2 // notification bar + status bar
)

// Processor runs a single job. pipeline.Runner implements it.
type Processor interface {
	Process(job pipeline.Job) pipeline.Result
}

// Messages

type resultMsg struct {
	result pipeline.Result
}

// Batch is the Bubble Tea model that runs jobs one after another and shows
// their progress.
type Batch struct {
	proc     Processor
	jobs     []pipeline.Job
	results  []pipeline.Result
	width    int
	height   int
	bar      *notify.Bar
	bell     *notify.Bell
	now      func() time.Time
	quitting bool
	// stopped is set once the job in flight at quit time has reported back.
	stopped bool
}

// Option configures a Batch.
type Option func(*Batch)

// WithNotifyBar shows recent results in a bar above the key help.
func WithNotifyBar(bar *notify.Bar) Option {
	return func(b *Batch) { b.bar = bar }
}

// WithBell rings the terminal bell for results the bell is configured for.
func WithBell(bell *notify.Bell) Option {
	return func(b *Batch) { b.bell = bell }
}

// NewBatch creates a batch model for jobs.
func NewBatch(proc Processor, jobs []pipeline.Job, opts ...Option) Batch {
	b := Batch{
		proc:    proc,
		jobs:    jobs,
		results: make([]pipeline.Result, 0, len(jobs)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Done returns true once every job has a result.
func (b Batch) Done() bool {
	return len(b.results) == len(b.jobs)
}

// Results returns one result per job. Jobs that never started because the
// user quit early are reported as cancelled.
func (b Batch) Results() []pipeline.Result {
	out := make([]pipeline.Result, 0, len(b.jobs))
	out = append(out, b.results...)
	for _, job := range b.jobs[len(b.results):] {
		out = append(out, pipeline.Cancelled(job))
	}
	return out
}

// Init starts the first job.
func (b Batch) Init() tea.Cmd {
	return b.next()
}

func (b Batch) next() tea.Cmd {
	if b.quitting || b.Done() {
		return nil
	}
	job := b.jobs[len(b.results)]
	proc := b.proc
	return func() tea.Msg {
		return resultMsg{result: proc.Process(job)}
	}
}

// Update handles messages.
func (b Batch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return b.handleKey(msg)

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case resultMsg:
		if b.stopped || b.Done() {
			return b, nil
		}
		b.results = append(b.results, msg.result)
		n := notify.Notification{
			Input:     msg.result.Job.Name(),
			Status:    msg.result.Status,
			Reason:    msg.result.Reason,
			Timestamp: b.now(),
		}
		if b.bar != nil {
			b.bar.Push(n)
		}
		if b.bell != nil {
			b.bell.Ring(n)
		}
		if b.quitting {
			b.stopped = true
			return b, tea.Quit
		}
		return b, b.next()
	}

	return b, nil
}

func (b Batch) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if b.quitting {
			return b, nil
		}
		b.quitting = true
		// A job still running gets to finish and record its result; the
		// resultMsg handler quits after that.
		if b.Done() {
			b.stopped = true
			return b, tea.Quit
		}
		return b, nil

	case "m":
		if b.bell != nil {
			if b.bell.Muted() {
				b.bell.Unmute()
			} else {
				b.bell.Mute()
			}
		}
		return b, nil
	}

	return b, nil
}

// View renders the batch progress.
func (b Batch) View() string {
	var sb strings.Builder

	sb.WriteString(b.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(b.renderSubheader())
	sb.WriteString("\n")
	sb.WriteString(columnHeaderStyle.Render(padRight("INPUT", colName) + padRight("KIND", colKind) + padRight("STATUS", colStatus) + "DETAIL"))
	sb.WriteString("\n")
	sb.WriteString(subheaderStyle.Render(strings.Repeat("─", b.viewWidth())))
	sb.WriteString("\n")

	sb.WriteString(b.renderJobList(b.listHeight()))

	sb.WriteString(b.renderNotificationBar())
	sb.WriteString("\n")
	sb.WriteString(b.renderStatusBar())

	return sb.String()
}

func (b Batch) viewWidth() int {
	if b.width <= 0 {
		return defaultWidth
	}
	return b.width
}

func (b Batch) listHeight() int {
	if b.height <= 0 {
		return len(b.jobs)
	}
	h := b.height - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

func (b Batch) renderHeader() string {
	title := headerStyle.Render("sheetcut")

	right := ""
	if failed := pipeline.Summarize(b.results).Failed; failed > 0 {
		right = badgeStyle.Render(fmt.Sprintf("[%d failed]", failed))
	}

	gap := b.viewWidth() - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + right
}

func (b Batch) renderSubheader() string {
	if len(b.jobs) == 0 {
		return subheaderStyle.Render("No jobs configured.")
	}
	if b.Done() {
		return subheaderStyle.Render("Done: " + pipeline.Summarize(b.results).String())
	}
	if b.quitting && !b.stopped {
		return subheaderStyle.Render(fmt.Sprintf("Finishing %s, then quitting…", b.jobs[len(b.results)].Name()))
	}
	return subheaderStyle.Render(fmt.Sprintf("Processing %d/%d…", len(b.results)+1, len(b.jobs)))
}

func (b Batch) renderJobList(height int) string {
	// Keep the running job in view.
	start := 0
	if current := len(b.results); current >= height {
		start = current - height + 1
	}
	end := start + height
	if end > len(b.jobs) {
		end = len(b.jobs)
	}

	detailWidth := b.viewWidth() - colName - colKind - colStatus
	var sb strings.Builder
	for i := start; i < end; i++ {
		job := b.jobs[i]
		status, detail := statusPending, ""
		switch {
		case i < len(b.results):
			status, detail = b.results[i].Status, resultDetail(b.results[i])
		case i == len(b.results) && !b.stopped:
			status = statusRunning
		}

		line := padRight(truncate(job.Name(), colName-2), colName) +
			padRight(string(job.Kind), colKind) +
			StatusStyle(status).Render(padRight(StatusLabel(status), colStatus)) +
			lipgloss.NewStyle().Foreground(colorMuted).Render(truncate(detail, detailWidth))
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i := end - start; i < height; i++ {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b Batch) renderNotificationBar() string {
	if b.bar == nil {
		return notificationBarStyle.Render("")
	}
	return notificationBarStyle.Render("  " + b.bar.Render(b.viewWidth()-4, b.now()))
}

func (b Batch) renderStatusBar() string {
	help := "  q:quit"
	if b.bell != nil {
		if b.bell.Muted() {
			help += "  m:unmute"
		} else {
			help += "  m:mute"
		}
		if missed := b.bell.Missed(); missed > 0 {
			help += fmt.Sprintf("  silent: %d", missed)
		}
	}
	return statusBarStyle.Render(help)
}

// resultDetail summarises what a finished job produced.
func resultDetail(r pipeline.Result) string {
	switch {
	case r.Status != pipeline.StatusSuccess:
		return r.Reason
	case r.Job.Kind == pipeline.KindSlice:
		return fmt.Sprintf("%d sprites", r.Sprites)
	case len(r.Outputs) > 0:
		return "→ " + r.Outputs[0]
	default:
		return ""
	}
}

// Helpers

func padRight(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-1]) + "…"
}
