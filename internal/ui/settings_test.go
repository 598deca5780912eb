package ui_test

import (
	"testing"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view(show bool) ui.SettingsView {
	reason := toggle.ReasonShown
	if !show {
		reason = toggle.ReasonEOAOnly
	}
	return ui.SettingsView{
		Address:        "0x1234567890123456789012345678901234567890",
		Namespace:      "eip155",
		NetworkName:    "Ethereum",
		ConnectorName:  "Email & Socials",
		EmbeddedWallet: true,
		Email:          "test@example.com",
		NamesSupported: true,
		Preferred:      accounttype.SmartAccount,
		Decision:       toggle.Decision{Show: show, Reason: reason},
	}
}

func TestToggleRowFollowsDecision(t *testing.T) {
	assert.True(t, view(true).HasRow(ui.ToggleTestID))
	assert.False(t, view(false).HasRow(ui.ToggleTestID))
}

func TestToggleLabel(t *testing.T) {
	assert.Equal(t, "Switch to your EOA", ui.ToggleLabel(accounttype.SmartAccount))
	assert.Equal(t, "Switch to your smart account", ui.ToggleLabel(accounttype.EOA))
	assert.Equal(t, "Switch to your smart account", ui.ToggleLabel(""))
}

func TestEmailAndNameRowsOnlyForEmbeddedWallet(t *testing.T) {
	v := view(true)
	assert.True(t, v.HasRow(ui.EmailRowID))
	assert.True(t, v.HasRow(ui.ChooseNameRowID))

	v.EmbeddedWallet = false
	assert.False(t, v.HasRow(ui.EmailRowID))
	assert.False(t, v.HasRow(ui.ChooseNameRowID))
}

func TestChooseNameHiddenOnceNamed(t *testing.T) {
	v := view(true)
	v.ProfileName = "alice.reown.id"
	assert.False(t, v.HasRow(ui.ChooseNameRowID))

	rows := v.Rows()
	assert.Contains(t, rows[0].Value, "alice.reown.id")
}

func TestRenderSettingsIncludesToggleID(t *testing.T) {
	assert.Contains(t, ui.RenderSettings(view(true)), ui.ToggleTestID)
	assert.NotContains(t, ui.RenderSettings(view(false)), ui.ToggleTestID)
}

func TestSettingsModelViewShowsToggle(t *testing.T) {
	m := ui.NewSettingsModel(view(true), nil)
	assert.Contains(t, m.View(), "Switch to your EOA")

	next, _ := m.Update(ui.SettingsMsg(view(false)))
	assert.NotContains(t, next.View(), "Switch to your EOA")
}

func TestSettingsModelSelectToggle(t *testing.T) {
	var selected string
	m := ui.NewSettingsModel(view(true), func(id string) tea.Cmd {
		selected = id
		return nil
	})

	// Rows: account, network, connector, email, choose name, toggle, disconnect.
	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ui.ToggleTestID, selected)
	assert.Contains(t, model.View(), "✓ Switch to your EOA…")
}

func TestSettingsModelCursorClampedWhenRowsShrink(t *testing.T) {
	var model tea.Model = ui.NewSettingsModel(view(true), nil)
	for i := 0; i < 10; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, _ = model.Update(ui.SettingsMsg(view(false)))

	var selected string
	m := model.(ui.SettingsModel)
	require.False(t, m.Contents().Decision.Show)
	assert.NotPanics(t, func() {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	})
	assert.Empty(t, selected)
}

func TestSettingsModelQuit(t *testing.T) {
	model, cmd := ui.NewSettingsModel(view(true), nil).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Empty(t, model.View())
}
