package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) draft(ctx context.Context, args []string) {
	if err := a.draftCmd(ctx, args); err != nil {
		a.fail(err)
	}
}

func (a *App) draftCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("draft save|load|list|delete")
	}
	sub, args := args[0], args[1:]
	if sub != "list" && len(args) != 1 {
		return usage("draft " + sub + " <name>")
	}

	switch sub {
	case "save":
		d, err := a.ws.SaveDraft(ctx, args[0])
		if err != nil {
			return err
		}
		a.printf("draft %q saved (revision %d)\n", d.Name, d.Revision)
	case "load":
		if err := a.ws.LoadDraft(ctx, args[0]); err != nil {
			return err
		}
		a.printf("draft %q loaded\n", args[0])
	case "list":
		list, err := a.ws.ListDrafts(ctx)
		if err != nil {
			return err
		}
		for _, d := range list {
			a.printf("%s  forest #%d  rev %d  %s\n", d.Name, d.ForestSeqNo, d.Revision, d.UpdatedAt.Local().Format(time.DateTime))
		}
	case "delete":
		return a.ws.DeleteDraft(ctx, args[0])
	default:
		return fmt.Errorf("unknown draft command %q", sub)
	}
	return nil
}
