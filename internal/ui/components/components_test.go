package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a"},
		{Label: "off2", Disabled: true},
		{Label: "b"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, ran)
}

func TestMenu_SetItemsClampsCursor(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}})
	m.Selected = 2

	m.SetItems([]MenuItem{{Label: "x"}})
	assert.Equal(t, 0, m.Selected)
}

func TestMenu_ViewShowsDetail(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Go Basics", Detail: "3"}})
	view := m.View(40)
	assert.Contains(t, view, "Go Basics")
	assert.Contains(t, view, "3")
}

func TestMultiChoice_NumberKeyPicks(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})

	mc, cmd := mc.Update(keyPress('3'))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, mc.Selected)

	msg, ok := cmd().(ChoicePickedMsg)
	require.True(t, ok)
	assert.Equal(t, ChoicePickedMsg{Index: 2, Value: "c"}, msg)
}

func TestMultiChoice_OutOfRangeNumberIgnored(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})

	_, cmd := mc.Update(keyPress('7'))
	assert.Nil(t, cmd)
}

func TestMultiChoice_ArrowsThenEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyUp})

	_, cmd := mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ChoicePickedMsg{Index: 1, Value: "b"}, cmd())
}

func TestMultiChoice_RevealedIgnoresKeys(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc.Reveal(0, 1)

	_, cmd := mc.Update(keyPress('1'))
	assert.Nil(t, cmd)
	assert.True(t, mc.Revealed())
}

func TestMultiChoice_ViewNumbersOptions(t *testing.T) {
	mc := NewMultiChoice([]string{"alpha", "beta", "gamma", "delta"})
	view := mc.View(40)
	for i, opt := range mc.Options {
		assert.Contains(t, view, opt)
		assert.Contains(t, view, string(rune('1'+i))+")")
	}
	assert.Equal(t, 4, strings.Count(view, "\n"))
}

func TestProgressBar_Clamps(t *testing.T) {
	over := NewProgressBar("", 1.5, false, 10).View()
	assert.NotEmpty(t, over)

	under := NewProgressBar("x", -1, true, 20).View()
	assert.Contains(t, under, "x")
}

func TestButton_KeyPresses(t *testing.T) {
	pressed := 0
	b := NewButton("Retry", "r", true, func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(keyPress('r'))
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	b.Update(keyPress('x'))
	assert.Equal(t, 2, pressed)
	assert.Contains(t, b.View(), "Retry")
}
