package ui

import (
	"email-classifier/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewState_InitialState(t *testing.T) {
	req := require.New(t)
	s := NewViewState().Snapshot()
	req.Equal(TabText, s.ActiveTab)
	req.Equal(DisplayNone, s.Display)
	req.Empty(s.ErrorText)
}

func TestViewState_ShowErrorThenResults_AreExclusive(t *testing.T) {
	req := require.New(t)
	v := NewViewState()

	// Given an error on screen
	v.ShowError("boom")
	req.True(v.ErrorVisible())
	req.False(v.ResultsVisible())
	req.Equal("boom", v.Snapshot().ErrorText)
	req.Equal(PanelError, v.Snapshot().ScrollTarget)

	// When results are shown
	v.ShowResults()

	// Then the error panel is hidden
	req.True(v.ResultsVisible())
	req.False(v.ErrorVisible())
	req.Empty(v.Snapshot().ErrorText)
	req.Equal(PanelResults, v.Snapshot().ScrollTarget)

	// And showing an error again hides the results
	v.ShowError("again")
	req.False(v.ResultsVisible())
	req.True(v.ErrorVisible())
}

func TestViewState_SelectTab_HidesBothPanels(t *testing.T) {
	tests := []struct {
		name  string
		setup func(v *ViewState)
		tab   Tab
	}{
		{"results shown, switch to file", func(v *ViewState) { v.ShowResults() }, TabFile},
		{"error shown, switch to file", func(v *ViewState) { v.ShowError("x") }, TabFile},
		{"results shown, reselect text", func(v *ViewState) { v.ShowResults() }, TabText},
		{"error shown, back to text", func(v *ViewState) {
			_ = v.SelectTab(TabFile)
			v.ShowError("x")
		}, TabText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			v := NewViewState()
			tt.setup(v)

			req.NoError(v.SelectTab(tt.tab))

			s := v.Snapshot()
			req.Equal(tt.tab, s.ActiveTab)
			req.Equal(DisplayNone, s.Display)
			req.False(v.ResultsVisible())
			req.False(v.ErrorVisible())
			req.Equal(PanelNone, s.ScrollTarget)
		})
	}
}

func TestViewState_SelectTab_Unknown(t *testing.T) {
	req := require.New(t)
	v := NewViewState()
	v.ShowResults()

	err := v.SelectTab("settings")

	req.ErrorIs(err, errors.ErrUnknownTab)
	// Nothing changed
	req.Equal(TabText, v.Snapshot().ActiveTab)
	req.True(v.ResultsVisible())
}

func TestViewState_HideAll(t *testing.T) {
	v := NewViewState()
	v.ShowError("x")
	v.HideAll()
	require.Equal(t, DisplayNone, v.Snapshot().Display)
	require.Equal(t, "none", v.Snapshot().Display.String())
}

func TestViewState_TakeScroll_OncePerReveal(t *testing.T) {
	req := require.New(t)
	v := NewViewState()

	// Given nothing revealed yet
	req.Equal(PanelNone, v.TakeScroll())

	// When results are revealed
	v.ShowResults()

	// Then the first redraw scrolls and the following ones do not
	req.Equal(PanelResults, v.TakeScroll())
	for range 3 {
		req.Equal(PanelNone, v.TakeScroll())
	}
	req.Equal(PanelResults, v.Snapshot().ScrollTarget)

	// And a new reveal scrolls again once
	v.ShowError("boom")
	req.Equal(PanelError, v.TakeScroll())
	req.Equal(PanelNone, v.TakeScroll())
}

func TestViewState_TakeScroll_ClearedWhenHidden(t *testing.T) {
	req := require.New(t)
	v := NewViewState()

	v.ShowResults()
	v.HideAll()
	req.Equal(PanelNone, v.TakeScroll())

	v.ShowError("boom")
	req.NoError(v.SelectTab(TabFile))
	req.Equal(PanelNone, v.TakeScroll())
}
