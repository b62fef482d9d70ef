package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arvidh/lifeline/internal/config"
	"github.com/arvidh/lifeline/internal/dateutil"
	"github.com/arvidh/lifeline/internal/timeline"
)

// EventSource supplies events whose interval intersects [start, end]. The
// timeline view is the only consumer; it pre-filters to a coarse window and
// lets the layout core handle the rest.
type EventSource func(start, end time.Time) ([]timeline.Event, error)

// Model is the timeline view: a viewport over the event set plus the layouts
// computed for the currently loaded window. One terminal cell maps to one
// layout pixel, so the core's scale table drives what a column means.
type Model struct {
	source EventSource
	theme  Theme
	keys   keyMap

	viewport    *timeline.Viewport
	trackHeight float64

	// Loaded window: events and their packed layouts, with layout pixel
	// space originating at loadedStart. Pan-only updates re-filter these
	// instead of re-packing.
	events      []timeline.Event
	layouts     []timeline.EventLayout
	reference   time.Time
	loadedStart time.Time
	loadedEnd   time.Time

	width  int
	height int

	gotoInput  textinput.Model
	gotoActive bool
	message    string
	err        error
}

// NewModel builds a timeline view centered on the given date.
func NewModel(source EventSource, cfg config.Config, center time.Time, width int) *Model {
	zoom := timeline.ParseZoomLevel(cfg.Timeline.DefaultZoom)

	input := textinput.New()
	input.Placeholder = "2024-03-10, yesterday, 2 weeks ago..."
	input.Prompt = "goto: "
	input.CharLimit = 40

	m := &Model{
		source:      source,
		theme:       DefaultTheme,
		keys:        defaultKeyMap(),
		viewport:    timeline.NewViewport(center, zoom, float64(width)),
		trackHeight: cfg.Timeline.TrackHeight,
		gotoInput:   input,
		width:       width,
		height:      24,
	}
	m.reload()
	return m
}

// Run opens the timeline TUI over an event source.
func Run(source EventSource, cfg config.Config) error {
	m := NewModel(source, cfg, time.Now(), 80)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

// visibleWindow returns the viewport's pixel range in loaded-window space.
func (m *Model) visibleWindow() (float64, float64) {
	vs := timeline.PixelPosition(m.viewport.StartDate, m.reference, m.viewport.Zoom)
	return vs, vs + m.viewport.Width
}

// reload refetches events over the viewport window padded by one full span
// on each side, then re-packs layouts from scratch.
func (m *Model) reload() {
	span := m.viewport.EndDate.Sub(m.viewport.StartDate)
	m.loadedStart = m.viewport.StartDate.Add(-span)
	m.loadedEnd = m.viewport.EndDate.Add(span)
	m.reference = m.loadedStart

	if m.source != nil {
		events, err := m.source(m.loadedStart, m.loadedEnd)
		if err != nil {
			m.err = err
			return
		}
		m.err = nil
		m.events = events
	}
	m.relayout()
}

// relayout runs the full packing pass. Needed when the event set, zoom, or
// reference changes; plain scrolling goes through VisibleLayouts instead.
func (m *Model) relayout() {
	vs, ve := m.visibleWindow()
	m.layouts = timeline.CalculateLayout(m.events, m.viewport.Zoom, m.reference, vs, ve, m.trackHeight)
}

// needsReload reports whether the viewport has wandered outside the loaded
// window.
func (m *Model) needsReload() bool {
	return m.viewport.StartDate.Before(m.loadedStart) || m.viewport.EndDate.After(m.loadedEnd)
}

func (m *Model) panBy(deltaPixels float64) {
	m.viewport.Pan(deltaPixels)
	if m.needsReload() {
		m.reload()
	}
}

func (m *Model) setZoom(zoom timeline.ZoomLevel) {
	if zoom == m.viewport.Zoom {
		return
	}
	m.viewport.SetZoom(zoom)
	// Zoom changes pixel density, so the loaded window's pixel space and
	// track packing are both stale.
	m.reload()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = float64(msg.Width)
		m.viewport.CenterOn(m.viewport.CenterDate)
		if m.needsReload() {
			m.reload()
		} else {
			m.relayout()
		}
		return m, nil

	case tea.KeyMsg:
		if m.gotoActive {
			return m.handleGotoKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.viewport.Width / 8

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PanLeft):
		// Positive deltas move the window earlier in time.
		m.panBy(step)

	case key.Matches(msg, m.keys.PanRight):
		m.panBy(-step)

	case key.Matches(msg, m.keys.ZoomIn):
		if timeline.CanZoomIn(m.viewport.Zoom) {
			m.setZoom(timeline.ZoomIn(m.viewport.Zoom))
		} else {
			m.message = "already at day zoom"
		}

	case key.Matches(msg, m.keys.ZoomOut):
		if timeline.CanZoomOut(m.viewport.Zoom) {
			m.setZoom(timeline.ZoomOut(m.viewport.Zoom))
		} else {
			m.message = "already at year zoom"
		}

	case key.Matches(msg, m.keys.Today):
		m.viewport.CenterOn(time.Now())
		m.reload()

	case key.Matches(msg, m.keys.Goto):
		m.gotoActive = true
		m.gotoInput.SetValue("")
		return m, m.gotoInput.Focus()

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		m.message = fmt.Sprintf("loaded %d events", len(m.events))
	}

	return m, nil
}

func (m *Model) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.gotoActive = false
		return m, nil

	case tea.KeyEnter:
		m.gotoActive = false
		date, err := dateutil.ParseFlexibleDate(m.gotoInput.Value(), time.Local)
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.viewport.CenterOn(date)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderGrid())
	b.WriteByte('\n')

	vs, ve := m.visibleWindow()
	visible := timeline.VisibleLayouts(m.layouts, vs, ve)

	trackRows := m.height - 4
	if trackRows < 1 {
		trackRows = 1
	}
	tracks := trackCount(m.layouts)
	shown := tracks
	if shown > trackRows {
		shown = trackRows
	}

	titles := make(map[int64]timeline.Event, len(m.events))
	for _, ev := range m.events {
		titles[ev.ID] = ev
	}

	for track := 0; track < shown; track++ {
		b.WriteString(m.renderTrack(visible, track, vs, titles))
		b.WriteByte('\n')
	}
	if tracks > shown {
		b.WriteString(m.theme.Hint.Render(fmt.Sprintf("… +%d more tracks", tracks-shown)))
		b.WriteByte('\n')
	}

	b.WriteString(m.renderStatus(len(visible)))
	return b.String()
}

func (m *Model) renderHeader() string {
	v := m.viewport
	left := m.theme.Title.Render("lifeline") + " " +
		m.theme.Label.Render(fmt.Sprintf("[%s]", v.Zoom))
	window := fmt.Sprintf(" %s — %s ",
		v.StartDate.Format("2006-01-02"), v.EndDate.Format("2006-01-02"))
	return left + m.theme.Value.Render(window)
}

// renderGrid draws tick marks every GridInterval days, labelled per zoom.
func (m *Model) renderGrid() string {
	row := make([]rune, m.width)
	for i := range row {
		row[i] = ' '
	}

	format := gridLabelFormat(m.viewport.Zoom)
	for _, tick := range gridTicks(m.viewport) {
		col := int(m.viewport.DateToPixel(tick))
		if col < 0 || col >= m.width {
			continue
		}
		row[col] = '|'
		label := tick.Format(format)
		for i, r := range label {
			if col+1+i >= m.width {
				break
			}
			row[col+1+i] = r
		}
	}
	return m.theme.Grid.Render(string(row))
}

// gridTicks returns tick dates covering the viewport at the zoom's grid
// interval, aligned to the first tick at or after an interval boundary
// relative to the window start.
func gridTicks(v *timeline.Viewport) []time.Time {
	interval := timeline.GridInterval(v.Zoom)
	step := time.Duration(interval * 24 * float64(time.Hour))

	var ticks []time.Time
	for tick := v.StartDate.Truncate(step); !tick.After(v.EndDate); tick = tick.Add(step) {
		if tick.Before(v.StartDate) {
			continue
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

func gridLabelFormat(z timeline.ZoomLevel) string {
	switch z {
	case timeline.ZoomYear:
		return "2006"
	case timeline.ZoomMonth:
		return "Jan 2006"
	case timeline.ZoomWeek:
		return "Jan 02"
	default:
		return "Mon 15:04"
	}
}

// renderTrack draws one lane: every visible layout on this track placed at
// its pixel column, one cell per pixel.
func (m *Model) renderTrack(visible []timeline.EventLayout, track int, vs float64, events map[int64]timeline.Event) string {
	type block struct {
		col, width int
		title      string
		category   string
	}

	var blocks []block
	for _, l := range visible {
		if l.Track != track {
			continue
		}
		ev := events[l.EventID]
		col := int(l.X - vs)
		w := int(l.Width + 0.5)
		if w < 1 {
			w = 1
		}
		blocks = append(blocks, block{col: col, width: w, title: ev.Title, category: ev.Category})
	}

	var b strings.Builder
	cursor := 0
	for _, blk := range blocks {
		start := blk.col
		end := blk.col + blk.width
		if end <= cursor || start >= m.width {
			continue
		}
		if start < cursor {
			start = cursor
		}
		if end > m.width {
			end = m.width
		}
		b.WriteString(strings.Repeat(" ", start-cursor))

		cell := fit(blk.title, end-start)
		b.WriteString(m.theme.EventStyle(blk.category).Render(cell))
		cursor = end
	}
	return b.String()
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

func (m *Model) renderStatus(visibleCount int) string {
	if m.gotoActive {
		return m.gotoInput.View()
	}
	if m.err != nil {
		return m.theme.Error.Render("error: " + m.err.Error())
	}
	if m.message != "" {
		msg := m.message
		m.message = ""
		return m.theme.Hint.Render(msg)
	}
	stats := timeline.ComputeStatistics(m.events)
	return m.theme.Hint.Render(fmt.Sprintf(
		" %d loaded · %d visible · h/l pan · +/- zoom · o today · g goto · q quit",
		stats.TotalEvents, visibleCount))
}

func trackCount(layouts []timeline.EventLayout) int {
	if len(layouts) == 0 {
		return 0
	}
	max := 0
	for _, l := range layouts {
		if l.Track > max {
			max = l.Track
		}
	}
	return max + 1
}
