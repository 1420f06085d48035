package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ctv/internal/domain"
	"ctv/internal/storage"
)

// Viewer displays test results in an interactive TUI
type Viewer interface {
	View(results *domain.TestResultsOutput) error
}

// ErrorViewer browses the failing tests of the last run
type ErrorViewer struct {
	storage storage.Storage
	decoder Decoder
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage, decoder Decoder) *ErrorViewer {
	return &ErrorViewer{
		storage: st,
		decoder: decoder,
	}
}

// View displays test failures in an interactive TUI
func (ev *ErrorViewer) View(results *domain.TestResultsOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		failure := results.Details[index]
		if failure.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(failure.Description))
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(failure.Description))
	}
	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 4, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for _, failure := range results.Details {
			if !failure.Resolved {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failed Tests (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ", len(results.Details), unresolved))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results.Details) {
			return
		}
		failure := results.Details[index]
		statsView.SetText(ev.formatFailureStats(failure))
		detailsView.SetText(ev.formatFailureDetails(failure)).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					results.Details[index].Resolved = !results.Details[index].Resolved
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					// best effort; the viewer keeps working without persistence
					_ = ev.storage.SaveOutput(results)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureStats formats the header block for a failing test using tview color tags
func (ev *ErrorViewer) formatFailureStats(failure domain.TestFailure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ %s[white] [yellow][%s][white]\n", tview.Escape(failure.Description), tview.Escape(failure.TypeTag))
	fmt.Fprintf(&b, "[cyan]circuit:[white]   %s\n", tview.Escape(failure.CircuitPath))
	fmt.Fprintf(&b, "[cyan]reference:[white] %s\n", tview.Escape(failure.ReferencePath))
	return b.String()
}

// formatFailureDetails renders the decoded comparison table with aligned columns.
// The last pair is the step where the traces diverged.
func (ev *ErrorViewer) formatFailureDetails(failure domain.TestFailure) string {
	var table strings.Builder
	w := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
	if err := NewDiagnosticRenderer(w, ev.decoder).Render(failure.Record, failure.TypeTag); err != nil {
		return fmt.Sprintf("[red]cannot render record: %v[white]", err)
	}
	w.Flush()

	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]%d step(s) compared[white]\n\n", len(failure.Record))
	b.WriteString(tview.Escape(table.String()))
	return b.String()
}
