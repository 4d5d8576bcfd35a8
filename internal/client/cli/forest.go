package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/forestadmin/internal/client/models"
)

func (a *App) forest(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.fail(usage("forest list|load|new|show|set|attach|detach|sort|save|delete"))
		return
	}
	if err := a.forestCmd(ctx, args[0], args[1:]); err != nil {
		a.fail(err)
	}
}

func (a *App) forestCmd(ctx context.Context, sub string, args []string) error {
	ws := a.ws
	switch sub {
	case "list":
		p, err := page(args)
		if err != nil {
			return err
		}
		res, err := ws.ListForests(ctx, p, a.pageSize)
		if err != nil {
			return err
		}
		for _, f := range res.Items {
			a.printf("#%d %s (main %s) %s\n", f.ForestSeqNo, f.Name, f.MainYn, f.SimpleDescript)
		}
		a.printf("page %d, %d total\n", p, res.Total)

	case "load":
		if len(args) != 1 {
			return usage("forest load <id>")
		}
		id, err := number(args[0])
		if err != nil {
			return err
		}
		if err := ws.LoadForest(ctx, id); err != nil {
			return err
		}
		a.showFacility(ws.Facility.Record())

	case "new":
		ws.NewForest()

	case "show":
		a.showFacility(ws.Facility.Record())

	case "set":
		if len(args) < 1 {
			return usage("forest set <field> <value>")
		}
		p, err := models.FacilityField(args[0], value(args[1:]))
		if err != nil {
			return err
		}
		ws.Facility.Apply(p)

	case "attach":
		if len(args) < 2 {
			return usage("forest attach <images|map> <path...>")
		}
		set, err := a.facilitySet(args[0])
		if err != nil {
			return err
		}
		added, err := set.Add(newFiles(args[1:])...)
		if err != nil {
			return err
		}
		a.printf("%d file(s) attached\n", len(added))

	case "detach":
		if len(args) != 2 {
			return usage("forest detach <images|map> <n>")
		}
		set, err := a.facilitySet(args[0])
		if err != nil {
			return err
		}
		at, err := attachmentAt(set, args[1])
		if err != nil {
			return err
		}
		return set.Remove(at.CorrelationID)

	case "sort":
		if len(args) != 3 {
			return usage("forest sort <images|map> <n> <sort>")
		}
		set, err := a.facilitySet(args[0])
		if err != nil {
			return err
		}
		at, err := attachmentAt(set, args[1])
		if err != nil {
			return err
		}
		sort, err := number(args[2])
		if err != nil {
			return err
		}
		return set.Resequence(at.CorrelationID, sort)

	case "save":
		_, err := ws.SaveFacility(ctx, nil)
		return quiet(err)

	case "delete":
		ws.DeleteForest()

	default:
		return fmt.Errorf("unknown forest command %q", sub)
	}
	return nil
}

func (a *App) facilitySet(name string) (*models.AttachmentSet, error) {
	f := a.ws.Facility.Record()
	switch name {
	case "images":
		return f.Images, nil
	case "map":
		return f.Map, nil
	}
	return nil, usage("expected images or map")
}
