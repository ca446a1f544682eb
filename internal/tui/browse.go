// Package tui implements the interactive screens: a generic list
// browser instantiated per entity, and huh-based forms for create/edit
// flows. Every admin page is the same screen with a different
// BrowseConfig; none of them carries its own list-management logic.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sirivaram/sirictl/internal/listview"
	"sirivaram/sirictl/internal/tui/components"
	"sirivaram/sirictl/internal/tui/styles"
	"sirivaram/sirictl/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// searchDebounce is how long the search input must be stable before the
// filtered view recomputes.
const searchDebounce = 300 * time.Millisecond

const (
	minPageSize  = 5
	maxPageSize  = 50
	pageSizeStep = 5
)

// Column describes one table column for an entity list.
type Column[T any] struct {
	Title string
	Width int
	// Flex marks the column that absorbs leftover terminal width.
	Flex bool
	// Status renders the value with status coloring instead of plain text.
	Status bool
	Value  func(T) string
}

// RowAction describes one mutation available on a row. Enabled gates
// the action on the item's current status; a disabled action cannot be
// invoked through the screen at all.
type RowAction[T any] struct {
	Kind        listview.ActionKind
	Key         string
	Label       string
	Destructive bool
	Enabled     func(T) bool
	Confirm     func(T) string
	Invoke      func(ctx context.Context, item T) (string, error)
}

// BrowseConfig parameterizes the generic list screen for one entity.
type BrowseConfig[T any] struct {
	Breadcrumb   string
	EmptyMessage string
	PageSize     int

	ID         func(T) string
	SearchText func(T) string
	Columns    []Column[T]
	Fetch      func(ctx context.Context) ([]T, error)
	Actions    []RowAction[T]
}

// --- Messages ---

type itemsLoadedMsg[T any] struct {
	seq   int
	items []T
}

type itemsErrorMsg struct {
	seq int
	err error
}

type searchTickMsg struct {
	seq int
}

type actionResultMsg struct {
	id      string
	kind    listview.ActionKind
	label   string
	message string
	err     error
}

// --- Model ---

type browseModel[T any] struct {
	cfg      BrowseConfig[T]
	state    *listview.State[T]
	inflight *listview.InFlight

	search    textinput.Model
	searching bool

	cursor int // row index within the current window

	width  int
	height int

	loading bool
	// loadSeq gates stale fetches: a response tagged with an older
	// sequence is dropped instead of clobbering newer state.
	loadSeq int
	spinner spinner.Model
	err     error

	status        string
	statusIsError bool

	// persistentStatus survives the refresh cycle that follows a
	// successful mutation.
	persistentStatus string

	// Confirm phase. Every destructive or state-changing action passes
	// through here; there is no path from a key press straight to a
	// mutation.
	confirming    bool
	confirmAction int
	confirmItem   *T
	confirmIdx    int // 0 = proceed, 1 = cancel

	quitting bool
}

// RunBrowse starts the full-window interactive list screen for one
// entity and blocks until the user quits.
func RunBrowse[T any](cfg BrowseConfig[T]) error {
	p := tea.NewProgram(newBrowseModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run %s browser: %w", cfg.Breadcrumb, err)
	}
	return nil
}

func newBrowseModel[T any](cfg BrowseConfig[T]) browseModel[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 64
	ti.Width = 28

	return browseModel[T]{
		cfg:      cfg,
		state:    listview.New(cfg.SearchText, cfg.PageSize),
		inflight: listview.NewInFlight(),
		search:   ti,
		spinner:  s,
		loading:  true,
		loadSeq:  1, // Init dispatches the fetch for this sequence
	}
}

func (m browseModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd(m.loadSeq))
}

// startLoad begins a list fetch tagged with a fresh sequence number.
func (m browseModel[T]) startLoad() (browseModel[T], tea.Cmd) {
	m.loading = true
	m.err = nil
	m.loadSeq++
	return m, m.fetchCmd(m.loadSeq)
}

func (m browseModel[T]) fetchCmd(seq int) tea.Cmd {
	fetch := m.cfg.Fetch
	return func() tea.Msg {
		items, err := fetch(context.Background())
		if err != nil {
			return itemsErrorMsg{seq: seq, err: err}
		}
		return itemsLoadedMsg[T]{seq: seq, items: items}
	}
}

// --- Update ---

func (m browseModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case itemsLoadedMsg[T]:
		if msg.seq != m.loadSeq {
			return m, nil // superseded fetch; drop
		}
		m.loading = false
		m.state.SetItems(msg.items)
		m.clampCursor()
		if m.persistentStatus != "" {
			m.status = m.persistentStatus
			m.statusIsError = false
			m.persistentStatus = ""
		} else {
			m.status = fmt.Sprintf("%d item(s)", len(msg.items))
			m.statusIsError = false
		}
		return m, nil

	case itemsErrorMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		m.status = ""
		m.statusIsError = false
		return m, nil

	case searchTickMsg:
		if m.state.CommitSearch(msg.seq) {
			m.clampCursor()
		}
		return m, nil

	case actionResultMsg:
		return m.handleActionResult(msg)

	case spinner.TickMsg:
		if m.loading || m.inflight.Any() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleActionResult finishes a mutation: the token is always released;
// success triggers exactly one list reload, failure leaves the list
// untouched.
func (m browseModel[T]) handleActionResult(msg actionResultMsg) (tea.Model, tea.Cmd) {
	m.inflight.Finish(msg.id, msg.kind)

	if msg.err != nil {
		m.status = msg.err.Error()
		m.statusIsError = true
		return m, nil
	}

	note := msg.message
	if note == "" {
		note = fmt.Sprintf("%s successful", msg.label)
	}
	m.persistentStatus = note

	var cmd tea.Cmd
	m, cmd = m.startLoad()
	return m, tea.Batch(m.spinner.Tick, cmd)
}

// --- Key handling ---

func (m browseModel[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Block everything else while the list itself is loading.
	if m.loading {
		return m, nil
	}

	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.state.Window())-1 {
			m.cursor++
		}

	case "g":
		m.cursor = 0

	case "G":
		if n := len(m.state.Window()); n > 0 {
			m.cursor = n - 1
		}

	case "left", "h":
		if m.state.PrevPage() {
			m.cursor = 0
		}

	case "right", "l":
		if m.state.NextPage() {
			m.cursor = 0
		}

	case "+":
		if size := m.state.PageSize() + pageSizeStep; size <= maxPageSize {
			m.state.SetPageSize(size)
			m.cursor = 0
		}

	case "-":
		if size := m.state.PageSize() - pageSizeStep; size >= minPageSize {
			m.state.SetPageSize(size)
			m.cursor = 0
		}

	case "r":
		m.status = ""
		m.statusIsError = false
		var cmd tea.Cmd
		m, cmd = m.startLoad()
		return m, tea.Batch(m.spinner.Tick, cmd)

	default:
		return m.handleActionKey(msg.String())
	}

	return m, nil
}

func (m browseModel[T]) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)

	seq := m.state.SetSearch(m.search.Value())
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})

	return m, tea.Batch(inputCmd, debounce)
}

// handleActionKey starts the confirmation flow for a row action bound
// to the pressed key.
func (m browseModel[T]) handleActionKey(key string) (tea.Model, tea.Cmd) {
	window := m.state.Window()
	if len(window) == 0 || m.cursor >= len(window) {
		return m, nil
	}
	item := window[m.cursor]
	id := m.cfg.ID(item)

	for i, action := range m.cfg.Actions {
		if action.Key != key {
			continue
		}

		if action.Enabled != nil && !action.Enabled(item) {
			m.status = fmt.Sprintf("%s is not available for this item", action.Label)
			m.statusIsError = true
			return m, nil
		}
		if m.inflight.Active(id, action.Kind) {
			return m, nil // already in flight for this row
		}

		m.confirming = true
		m.confirmAction = i
		m.confirmItem = &item
		m.confirmIdx = 0
		if action.Destructive {
			m.confirmIdx = 1 // default to cancel for safety
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel[T]) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		m.confirmIdx = 1 - m.confirmIdx
		return m, nil

	case "y":
		return m.startAction()

	case "n", "esc":
		m.confirming = false
		m.confirmItem = nil
		return m, nil

	case "enter":
		if m.confirmIdx == 0 {
			return m.startAction()
		}
		m.confirming = false
		m.confirmItem = nil
		return m, nil
	}

	return m, nil
}

// startAction records the in-flight token and dispatches the mutation.
func (m browseModel[T]) startAction() (tea.Model, tea.Cmd) {
	action := m.cfg.Actions[m.confirmAction]
	item := *m.confirmItem
	id := m.cfg.ID(item)

	m.confirming = false
	m.confirmItem = nil

	if !m.inflight.Start(id, action.Kind) {
		return m, nil
	}

	m.status = ""
	m.statusIsError = false

	invoke := action.Invoke
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		message, err := invoke(context.Background(), item)
		return actionResultMsg{
			id:      id,
			kind:    action.Kind,
			label:   action.Label,
			message: message,
			err:     err,
		}
	})
}

func (m *browseModel[T]) clampCursor() {
	if n := len(m.state.Window()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- View ---

func (m browseModel[T]) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, m.cfg.Breadcrumb, "")
	footer := components.Footer(m.width, m.footerBindings())

	statusBar := ""
	if m.err != nil {
		statusBar = components.StatusBar(m.width, "Error: "+m.err.Error(), true)
	} else if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.statusIsError)
	}

	searchBar := m.renderSearchBar()

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	searchH := lipgloss.Height(searchBar)
	contentH := m.height - headerH - footerH - statusH - searchH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.confirming && m.confirmItem != nil {
		content = m.renderConfirm(contentH)
	} else {
		content = m.renderContent(contentH)
	}

	sections := []string{header, searchBar, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m browseModel[T]) footerBindings() []components.KeyBinding {
	if m.loading {
		return []components.KeyBinding{{Key: "ctrl+c", Desc: "quit"}}
	}
	if m.confirming {
		return []components.KeyBinding{
			{Key: "←/→", Desc: "select"},
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		}
	}
	if m.searching {
		return []components.KeyBinding{
			{Key: "enter/esc", Desc: "done"},
		}
	}

	bindings := []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "h/l", Desc: "page"},
		{Key: "/", Desc: "search"},
	}
	for _, action := range m.cfg.Actions {
		bindings = append(bindings, components.KeyBinding{Key: action.Key, Desc: action.Label})
	}
	bindings = append(bindings,
		components.KeyBinding{Key: "r", Desc: "refresh"},
		components.KeyBinding{Key: "q", Desc: "quit"},
	)
	return bindings
}

func (m browseModel[T]) renderSearchBar() string {
	var left string
	if m.searching {
		left = m.search.View()
	} else if m.state.Applied() != "" {
		left = styles.MutedText.Render("filter: ") + styles.Value.Render(m.state.Applied())
	} else {
		left = styles.MutedText.Render("press / to search")
	}

	right := styles.MutedText.Render(fmt.Sprintf("page %d/%d · %d/page",
		m.state.Page(), m.state.TotalPages(), m.state.PageSize()))

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	gap := m.width - 4 - leftLen - rightLen
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Padding(0, 2).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m browseModel[T]) renderContent(height int) string {
	if m.loading {
		loadingText := m.spinner.View() + "  Loading…"
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(loadingText),
		)
	}

	if m.err != nil {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.ErrorText.Render("Failed to load "+m.cfg.Breadcrumb),
		)
	}

	if len(m.state.Filtered()) == 0 {
		empty := m.cfg.EmptyMessage
		if m.state.Applied() != "" {
			empty = fmt.Sprintf("No matches for %q.", m.state.Applied())
		}
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(empty),
		)
	}

	return m.renderTable(height)
}

func (m browseModel[T]) renderConfirm(height int) string {
	action := m.cfg.Actions[m.confirmAction]
	question := action.Confirm(*m.confirmItem)

	proceedLabel := "Yes, " + strings.ToLower(action.Label)
	cancelLabel := "Cancel"

	proceed := styles.MutedText.Render("  " + proceedLabel + "  ")
	cancel := styles.MutedText.Render("  " + cancelLabel + "  ")
	if m.confirmIdx == 0 {
		style := styles.SuccessText
		if action.Destructive {
			style = styles.ErrorText
		}
		proceed = style.Render("▸ " + proceedLabel + "  ")
	} else {
		cancel = styles.Value.Render("▸ " + cancelLabel + "  ")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(question),
		"",
		proceed+cancel,
	)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m browseModel[T]) renderTable(height int) string {
	available := m.width - 4 // 2 padding on each side

	type column struct {
		title  string
		width  int
		status bool
		value  func(T) string
	}

	// S.No is derived from the page window, never from entity data.
	cols := []column{{title: "S.NO", width: 6}}
	flexIdx := -1
	for _, c := range m.cfg.Columns {
		cols = append(cols, column{title: c.Title, width: c.Width, status: c.Status, value: c.Value})
		if c.Flex && flexIdx < 0 {
			flexIdx = len(cols) - 1
		}
	}

	total := 0
	for _, c := range cols {
		total += c.width
	}
	if flexIdx >= 0 && available > total {
		cols[flexIdx].width += available - total
	}

	headerCells := make([]string, len(cols))
	for i, col := range cols {
		headerCells[i] = styles.TableHeader.
			Width(col.width).
			Render(col.title)
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	sep := styles.MutedText.Render(strings.Repeat("─", max(available, 1)))

	window := m.state.Window()
	rows := make([]string, 0, len(window))
	for i, item := range window {
		isSelected := i == m.cursor
		id := m.cfg.ID(item)
		busy := m.inflight.Busy(id)

		cells := make([]string, 0, len(cols))
		for ci, col := range cols {
			var value string
			if ci == 0 {
				value = fmt.Sprintf("%d", m.state.Ordinal(i))
				if busy {
					value = m.spinner.View()
				}
			} else {
				value = util.Truncate(col.value(item), col.width-2)
			}

			if col.status && !isSelected && !busy {
				cells = append(cells, styles.StatusStyle(col.value(item)).
					Width(col.width).
					Padding(0, 1).
					Render(value))
				continue
			}

			cellStyle := styles.TableCell.Width(col.width)
			if isSelected {
				cellStyle = styles.TableSelectedRow.Width(col.width)
			} else if busy {
				cellStyle = styles.MutedText.Padding(0, 1).Width(col.width)
			}
			cells = append(cells, cellStyle.Render(value))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	visibleRows := height - 3 // header + sep + bottom padding
	for len(rows) < visibleRows {
		rows = append(rows, "")
	}

	table := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{headerRow, sep}, rows...)...,
	)

	return lipgloss.NewStyle().
		Padding(0, 2).
		Render(table)
}
