package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/forestadmin/internal/client/models"
)

func (a *App) experience(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.fail(usage("exp list|codes|add|set|attach|detach|save|remove"))
		return
	}
	if err := a.experienceCmd(ctx, args[0], args[1:]); err != nil {
		a.fail(err)
	}
}

func (a *App) experienceCmd(ctx context.Context, sub string, args []string) error {
	l := a.ws.Experiences
	switch sub {
	case "list":
		for i, e := range l.Records() {
			a.showExperience(i+1, e)
		}

	case "codes":
		if len(l.Depth1()) == 0 {
			if err := l.LoadCodes(ctx); err != nil {
				return err
			}
		}
		for _, c := range l.Depth1() {
			a.printf("%s %s\n", c.CD, c.Name)
			for _, s := range l.Depth2For(c.CD) {
				a.printf("  %s %s\n", s.CD, s.Name)
			}
		}

	case "add":
		l.AddEmpty()
		a.printf("experience %d added\n", l.Len())

	case "set":
		if len(args) < 2 {
			return usage("exp set <n> <field> <value>")
		}
		e, err := a.experienceAt(args[0])
		if err != nil {
			return err
		}
		p, err := models.ExperienceField(args[1], value(args[2:]))
		if err != nil {
			return err
		}
		l.Apply(e, p)

	case "attach":
		if len(args) < 2 {
			return usage("exp attach <n> <path...>")
		}
		e, err := a.experienceAt(args[0])
		if err != nil {
			return err
		}
		added, err := e.Images.Add(newFiles(args[1:])...)
		if err != nil {
			return err
		}
		a.printf("%d file(s) attached\n", len(added))

	case "detach":
		if len(args) != 2 {
			return usage("exp detach <n> <m>")
		}
		e, err := a.experienceAt(args[0])
		if err != nil {
			return err
		}
		at, err := attachmentAt(e.Images, args[1])
		if err != nil {
			return err
		}
		return e.Images.Remove(at.CorrelationID)

	case "save":
		if len(args) != 1 {
			return usage("exp save <n>")
		}
		e, err := a.experienceAt(args[0])
		if err != nil {
			return err
		}
		_, err = l.ValidateAndSave(ctx, e, nil)
		return quiet(err)

	case "remove":
		if len(args) != 1 {
			return usage("exp remove <n>")
		}
		e, err := a.experienceAt(args[0])
		if err != nil {
			return err
		}
		l.RequestRemove(e)

	default:
		return fmt.Errorf("unknown exp command %q", sub)
	}
	return nil
}

func (a *App) experienceAt(pos string) (*models.Experience, error) {
	i, err := position(pos)
	if err != nil {
		return nil, err
	}
	return a.ws.Experiences.At(i)
}
