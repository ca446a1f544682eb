package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"sirivaram/sirictl/internal/listview"

	tea "github.com/charmbracelet/bubbletea"
)

type row struct {
	ID   string
	Name string
}

// testConfig returns a BrowseConfig whose fetch counts invocations and
// whose single action returns the configured result.
func testConfig(fetchCount *int, actionErr error) BrowseConfig[row] {
	return BrowseConfig[row]{
		Breadcrumb:   "rows",
		EmptyMessage: "nothing",
		PageSize:     10,
		ID:           func(r row) string { return r.ID },
		SearchText:   func(r row) string { return r.Name },
		Columns: []Column[row]{
			{Title: "NAME", Width: 20, Flex: true, Value: func(r row) string { return r.Name }},
		},
		Fetch: func(ctx context.Context) ([]row, error) {
			*fetchCount++
			return []row{{ID: "7", Name: "alpha"}, {ID: "9", Name: "beta"}}, nil
		},
		Actions: []RowAction[row]{
			{
				Kind:    listview.ActionApprove,
				Key:     "a",
				Label:   "approve",
				Confirm: func(r row) string { return fmt.Sprintf("Approve %s?", r.Name) },
				Invoke: func(ctx context.Context, r row) (string, error) {
					return "approved", actionErr
				},
			},
		},
	}
}

// update feeds one message through Update and returns the typed model.
func update(t *testing.T, m browseModel[row], msg tea.Msg) (browseModel[row], tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(browseModel[row])
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", next)
	}
	return typed, cmd
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	panic("unsupported key " + s)
}

// loaded builds the model in its steady state after the initial fetch.
func loaded(t *testing.T, fetchCount *int, actionErr error) browseModel[row] {
	t.Helper()
	m := newBrowseModel(testConfig(fetchCount, actionErr))
	m, _ = update(t, m, itemsLoadedMsg[row]{seq: m.loadSeq, items: []row{
		{ID: "7", Name: "alpha"}, {ID: "9", Name: "beta"},
	}})
	if m.loading {
		t.Fatal("model should be idle after the initial load")
	}
	return m
}

func TestBrowse_StaleFetchDropped(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)
	m.state.SetItems([]row{{ID: "7", Name: "alpha"}})

	// A response from a superseded load must not clobber state.
	m, _ = update(t, m, itemsLoadedMsg[row]{seq: m.loadSeq - 1, items: nil})

	if got := len(m.state.Items()); got != 1 {
		t.Errorf("stale load should be ignored, items now %d", got)
	}
}

func TestBrowse_ActionRequiresConfirmation(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)

	m, cmd := update(t, m, key("a"))

	if !m.confirming {
		t.Fatal("pressing an action key should enter the confirm phase")
	}
	if cmd != nil {
		t.Error("no mutation may start before confirmation")
	}
	if m.inflight.Any() {
		t.Error("nothing should be in flight during the confirm phase")
	}
}

func TestBrowse_DisabledActionBlocked(t *testing.T) {
	var fetches int
	cfg := testConfig(&fetches, nil)
	// The approve action only allows rows whose state still permits it;
	// the cursor starts on row 7, which does not.
	cfg.Actions[0].Enabled = func(r row) bool { return r.ID != "7" }

	m := newBrowseModel(cfg)
	m, _ = update(t, m, itemsLoadedMsg[row]{seq: m.loadSeq, items: []row{
		{ID: "7", Name: "alpha"}, {ID: "9", Name: "beta"},
	}})

	m, cmd := update(t, m, key("a"))

	if m.confirming {
		t.Error("a disabled action must not enter the confirm phase")
	}
	if cmd != nil || m.inflight.Any() {
		t.Error("a disabled action must not start a mutation")
	}
	if !m.statusIsError || !strings.Contains(m.status, "not available") {
		t.Errorf("expected a not-available status, got %q", m.status)
	}
}

func TestBrowse_ConfirmCancelLeavesListUntouched(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)

	m, _ = update(t, m, key("a"))
	m, cmd := update(t, m, key("esc"))

	if m.confirming {
		t.Error("esc should leave the confirm phase")
	}
	if cmd != nil || m.inflight.Any() {
		t.Error("cancelling must not start the mutation")
	}
}

func TestBrowse_ConfirmProceedStartsMutation(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)

	m, _ = update(t, m, key("a"))
	m, cmd := update(t, m, key("y"))

	if !m.inflight.Active("7", listview.ActionApprove) {
		t.Error("confirming should record the in-flight token")
	}
	if cmd == nil {
		t.Error("confirming should dispatch the mutation command")
	}
}

func TestBrowse_MutationSuccessTriggersSingleRefetch(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)
	seqBefore := m.loadSeq

	m.inflight.Start("7", listview.ActionApprove)
	m, cmd := update(t, m, actionResultMsg{
		id: "7", kind: listview.ActionApprove, label: "approve", message: "approved",
	})

	if m.inflight.Any() {
		t.Error("token must be released after the result")
	}
	if m.loadSeq != seqBefore+1 {
		t.Errorf("success should start exactly one reload, loadSeq %d -> %d", seqBefore, m.loadSeq)
	}
	if cmd == nil {
		t.Error("success should return the reload command")
	}
	if !m.loading {
		t.Error("model should be loading during the refetch")
	}

	// The success note survives the reload that follows.
	m, _ = update(t, m, itemsLoadedMsg[row]{seq: m.loadSeq, items: []row{{ID: "7", Name: "alpha"}}})
	if m.status != "approved" {
		t.Errorf("server message should be shown after the reload, got %q", m.status)
	}
}

func TestBrowse_MutationFailureSkipsRefetch(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, errors.New("HTTP 500"))
	seqBefore := m.loadSeq

	m.inflight.Start("9", listview.ActionDelete)
	m, cmd := update(t, m, actionResultMsg{
		id: "9", kind: listview.ActionDelete, label: "delete", err: errors.New("HTTP 500"),
	})

	if m.inflight.Any() {
		t.Error("token must be released even on failure")
	}
	if m.loadSeq != seqBefore {
		t.Error("failure must not trigger a reload")
	}
	if cmd != nil {
		t.Error("failure should return no command")
	}
	if !m.statusIsError || m.status == "" {
		t.Errorf("failure should surface an error status, got %q", m.status)
	}
	if got := len(m.state.Items()); got != 2 {
		t.Errorf("list must be untouched on failure, items now %d", got)
	}
}

func TestBrowse_SearchCommitResetsPage(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)

	// Type into the search box, then let the debounce fire.
	m, _ = update(t, m, key("/"))
	if !m.searching {
		t.Fatal("/ should focus the search input")
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("beta")})
	if cmd == nil {
		t.Fatal("typing should schedule a debounce tick")
	}

	m, _ = update(t, m, searchTickMsg{seq: 1})

	if got := m.state.Applied(); got != "beta" {
		t.Errorf("debounce tick should commit the term, got %q", got)
	}
	filtered := m.state.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "9" {
		t.Errorf("filtered view should hold only beta, got %+v", filtered)
	}
}

func TestBrowse_StaleSearchTickIgnored(t *testing.T) {
	var fetches int
	m := loaded(t, &fetches, nil)

	m, _ = update(t, m, key("/"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("al")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pha")})

	// The tick scheduled by the first keystroke is stale by now.
	m, _ = update(t, m, searchTickMsg{seq: 1})

	if got := m.state.Applied(); got != "" {
		t.Errorf("stale tick must not commit, applied %q", got)
	}
}

func TestBrowse_DestructiveConfirmDefaultsToCancel(t *testing.T) {
	var fetches int
	cfg := testConfig(&fetches, nil)
	cfg.Actions = append(cfg.Actions, RowAction[row]{
		Kind:        listview.ActionDelete,
		Key:         "d",
		Label:       "delete",
		Destructive: true,
		Confirm:     func(r row) string { return "Delete?" },
		Invoke: func(ctx context.Context, r row) (string, error) {
			return "", nil
		},
	})

	m := newBrowseModel(cfg)
	m, _ = update(t, m, itemsLoadedMsg[row]{seq: m.loadSeq, items: []row{{ID: "7", Name: "alpha"}}})

	m, _ = update(t, m, key("d"))
	if m.confirmIdx != 1 {
		t.Error("destructive confirm should default to cancel")
	}

	// Enter on the default therefore cancels.
	m, cmd := update(t, m, key("enter"))
	if m.confirming || cmd != nil || m.inflight.Any() {
		t.Error("enter on the cancel default must not mutate")
	}
}
