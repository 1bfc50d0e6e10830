package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"btr/internal/config"
	"btr/internal/domain"
)

// FailureViewer displays failed test cases from the last run in an
// interactive TUI: a list of failures on the left, the selected test's
// captured subject output on the right.
type FailureViewer struct {
	config *config.Config
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config) *FailureViewer {
	return &FailureViewer{config: cfg}
}

// View displays the run's failures. With no failures it prints a
// confirmation and returns without entering the TUI.
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	detail := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetScrollable(true)
	detail.SetBorder(true).SetTitle(" Subject Output ")

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failures (%d) ", len(results.Details)))

	showDetail := func(index int) {
		if index < 0 || index >= len(results.Details) {
			return
		}
		failure := results.Details[index]
		text := fmt.Sprintf("[yellow]%s[white]\n\nexit code: [red]%d[white]\n\n", failure.TestPath, failure.ExitCode)
		if failure.Message != "" {
			text += fmt.Sprintf("[red]%s[white]\n\n", tview.Escape(failure.Message))
		}
		if failure.Output != "" {
			text += tview.Escape(failure.Output)
		} else {
			text += "[gray](no output captured)"
		}
		detail.SetText(text)
		detail.ScrollToBeginning()
	}

	for i, failure := range results.Details {
		secondary := fmt.Sprintf("exit code %d", failure.ExitCode)
		if failure.Message != "" {
			secondary = failure.Message
		}
		list.AddItem(
			fmt.Sprintf("[yellow]%d.[white] %s", i+1, failure.TestPath),
			"    "+secondary,
			0,
			nil,
		)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetail(index)
	})
	showDetail(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detail, 0, 2, false)

	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText(" [yellow]↑/↓[white] select   [yellow]Tab[white] switch pane   [yellow]q[white] quit")

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(help, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Key() == tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(detail)
			} else {
				app.SetFocus(list)
			}
			return nil
		}
		return event
	})

	return app.SetRoot(root, true).Run()
}
