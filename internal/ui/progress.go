package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	ui      *UI
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode
// Returns nil if not in interactive mode
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	m := NewModel()
	p := tea.NewProgram(m, tea.WithOutput(ui.ErrWriter))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
	}

	// Run the program in a goroutine
	go func() {
		if _, err := p.Run(); err != nil {
			// Silently handle program errors
			_ = err
		}
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetOperation updates the current operation description
func (pc *ProgressController) SetOperation(op string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(OperationMsg(op))
	}
}

// SetUtteranceCount sets the total number of utterances to analyze
func (pc *ProgressController) SetUtteranceCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(UtteranceCountMsg(count))
	}
}

// UtteranceDone indicates an utterance has been analyzed
func (pc *ProgressController) UtteranceDone() {
	if pc != nil && pc.program != nil {
		pc.program.Send(UtteranceDoneMsg{})
	}
}

// Done signals that all work is complete
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		pc.program.Wait()
	}
}
