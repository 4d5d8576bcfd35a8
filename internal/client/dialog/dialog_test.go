package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	d := New()
	v := d.View()
	assert.False(t, v.Open)
	assert.Equal(t, DefaultTitle, v.Title)
	assert.Equal(t, DefaultFirstText, v.First.Text)
	assert.Equal(t, DefaultSecondText, v.Second.Text)
	assert.True(t, v.First.Visible)
	assert.True(t, v.Second.Visible)
}

func TestOpenWith_AppliesOnlySetFields(t *testing.T) {
	d := New()
	d.OpenWith(Settings{Body: "Delete it?", SecondText: "No"})

	v := d.View()
	require.True(t, v.Open)
	assert.Equal(t, DefaultTitle, v.Title)
	assert.Equal(t, "Delete it?", v.Body)
	assert.Equal(t, DefaultFirstText, v.First.Text)
	assert.Equal(t, "No", v.Second.Text)
}

func TestOpenWith_ResetsStaleCallbacks(t *testing.T) {
	d := New()
	fired := false
	d.OpenWith(Settings{Title: "one", OnFirst: func(context.Context) { fired = true }})
	d.OpenWith(Settings{Body: "two"})

	assert.Equal(t, DefaultTitle, d.View().Title)
	d.Click(context.Background(), First)
	assert.False(t, fired)
	assert.False(t, d.IsOpen())
}

func TestShowSimple_HidesSecondButton(t *testing.T) {
	d := New()
	d.ShowSimple("Saved.", "", false)

	v := d.View()
	assert.True(t, v.Open)
	assert.Equal(t, ClassHidden, v.Second.Class)
	assert.False(t, v.Second.Visible)

	d.ShowSimple("Really?", "Confirm", true)
	v = d.View()
	assert.Equal(t, "Confirm", v.Title)
	assert.True(t, v.Second.Visible)
}

func TestClick_RunsCallbackAndCloses(t *testing.T) {
	d := New()
	var got []string
	d.OpenWith(Settings{
		Body:     "x",
		OnFirst:  func(context.Context) { got = append(got, "first") },
		OnSecond: func(context.Context) { got = append(got, "second") },
	})

	d.Click(context.Background(), Second)
	assert.Equal(t, []string{"second"}, got)
	assert.False(t, d.IsOpen())
	// fields survive a click unless reset-on-close is set
	assert.Equal(t, "x", d.View().Body)

	d.Click(context.Background(), First)
	assert.Equal(t, []string{"second"}, got, "click on a closed dialog is ignored")
}

func TestClick_ResetOnClose(t *testing.T) {
	d := New()
	d.OpenWith(Settings{Body: "x", ResetOnClose: true})
	d.Click(context.Background(), First)
	assert.Empty(t, d.View().Body)
}

func TestClick_CallbackMayReopen(t *testing.T) {
	d := New()
	d.Confirm("Remove?", func(context.Context) { d.Notify("Removed.") })

	d.Click(context.Background(), First)
	v := d.View()
	assert.True(t, v.Open)
	assert.Equal(t, "Removed.", v.Body)
	assert.False(t, v.Second.Visible)
}

func TestDismiss_RunsOnClosedAndResets(t *testing.T) {
	d := New()
	closed := 0
	d.OpenWith(Settings{Title: "T", Body: "B", OnClosed: func() { closed++ }})

	d.Dismiss()
	assert.Equal(t, 1, closed)
	v := d.View()
	assert.False(t, v.Open)
	assert.Equal(t, DefaultTitle, v.Title)
	assert.Empty(t, v.Body)

	d.Dismiss()
	assert.Equal(t, 1, closed)
}

func TestReset(t *testing.T) {
	d := New()
	d.Notify("x")
	d.Reset()
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.View().Body)
}
