package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/forestadmin/internal/client/models"
)

func (a *App) notice(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.fail(usage("notice list|load|new|show|set|save|delete"))
		return
	}
	if err := a.noticeCmd(ctx, args[0], args[1:]); err != nil {
		a.fail(err)
	}
}

func (a *App) noticeCmd(ctx context.Context, sub string, args []string) error {
	ed := a.ws.Notice
	switch sub {
	case "list":
		p, err := page(args)
		if err != nil {
			return err
		}
		res, err := a.ws.ListNotices(ctx, p, a.pageSize)
		if err != nil {
			return err
		}
		for _, b := range res.Items {
			a.printf("#%d %s (use %s)\n", b.BoardSeqNo, b.Title, b.UseYn)
		}
		a.printf("page %d, %d total\n", p, res.Total)

	case "load":
		if len(args) != 1 {
			return usage("notice load <id>")
		}
		id, err := number(args[0])
		if err != nil {
			return err
		}
		if err := ed.Load(ctx, id); err != nil {
			return err
		}
		a.showNotice(ed.Record())

	case "new":
		ed.New()

	case "show":
		a.showNotice(ed.Record())

	case "set":
		if len(args) < 1 {
			return usage("notice set <field> <value>")
		}
		p, err := models.NoticeField(args[0], value(args[1:]))
		if err != nil {
			return err
		}
		ed.Apply(p)

	case "save":
		_, err := ed.ValidateAndSave(ctx, nil)
		return quiet(err)

	case "delete":
		ed.RequestDelete()

	default:
		return fmt.Errorf("unknown notice command %q", sub)
	}
	return nil
}
