package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
)

// settleDialog renders the dialog and reads button choices until it is
// closed. Callbacks may reopen it, so this loops. It returns false when
// input ended; the dialog is dismissed in that case.
func (a *App) settleDialog(ctx context.Context) bool {
	d := a.ws.Dialog
	for d.IsOpen() {
		v := d.View()
		a.renderDialog(v)

		if !a.in.Scan() {
			d.Dismiss()
			return false
		}
		switch strings.ToLower(strings.TrimSpace(a.in.Text())) {
		case "", "1":
			if v.First.Visible {
				d.Click(ctx, dialog.First)
				continue
			}
		case "2":
			if v.Second.Visible {
				d.Click(ctx, dialog.Second)
				continue
			}
		case "x", "close":
			d.Dismiss()
			continue
		}
		a.println("Choose one of the listed options.")
	}
	return true
}

func (a *App) renderDialog(v dialog.View) {
	a.printf("\n[%s]\n%s\n", v.Title, v.Body)
	var opts []string
	if v.First.Visible {
		opts = append(opts, "1) "+v.First.Text)
	}
	if v.Second.Visible {
		opts = append(opts, "2) "+v.Second.Text)
	}
	opts = append(opts, "x) close")
	a.printf("  %s\n? ", strings.Join(opts, "   "))
}
