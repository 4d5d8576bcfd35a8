package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/forestadmin/internal/client/models"
)

func (a *App) video(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.fail(usage("video list|add|set|attach|detach|row|save|remove"))
		return
	}
	if err := a.videoCmd(ctx, args[0], args[1:]); err != nil {
		a.fail(err)
	}
}

func (a *App) videoCmd(ctx context.Context, sub string, args []string) error {
	l := a.ws.Videos
	switch sub {
	case "list":
		for i, v := range l.Records() {
			a.showVideo(i+1, v)
		}

	case "add":
		if _, ok := l.AddEmpty(); ok {
			a.printf("video %d added\n", l.Len())
		}

	case "set":
		if len(args) != 2 {
			return usage("video set <n> <season>")
		}
		v, err := a.videoAt(args[0])
		if err != nil {
			return err
		}
		return v.SetSeason(args[1])

	case "attach":
		if len(args) != 2 {
			return usage("video attach <n> <path>")
		}
		v, err := a.videoAt(args[0])
		if err != nil {
			return err
		}
		_, err = v.File.Add(newFiles(args[1:])...)
		return err

	case "detach":
		if len(args) != 1 {
			return usage("video detach <n>")
		}
		v, err := a.videoAt(args[0])
		if err != nil {
			return err
		}
		at, ok := v.File.At(0)
		if !ok {
			return models.ErrAttachmentNotFound
		}
		return v.File.Remove(at.CorrelationID)

	case "row":
		return a.videoRow(args)

	case "save":
		if len(args) != 1 {
			return usage("video save <n>")
		}
		v, err := a.videoAt(args[0])
		if err != nil {
			return err
		}
		_, err = l.ValidateAndSave(ctx, v, nil)
		return quiet(err)

	case "remove":
		if len(args) != 1 {
			return usage("video remove <n>")
		}
		v, err := a.videoAt(args[0])
		if err != nil {
			return err
		}
		l.RequestRemove(v)

	default:
		return fmt.Errorf("unknown video command %q", sub)
	}
	return nil
}

func (a *App) videoRow(args []string) error {
	if len(args) < 2 {
		return usage("video row add|set|remove <n> ...")
	}
	v, err := a.videoAt(args[1])
	if err != nil {
		return err
	}
	switch args[0] {
	case "add":
		a.ws.Videos.AddRow(v)
		return nil
	case "set":
		if len(args) < 4 {
			return usage("video row set <n> <m> <expSeqNo> <time>")
		}
		i, err := position(args[2])
		if err != nil {
			return err
		}
		exp, err := number(args[3])
		if err != nil {
			return err
		}
		return v.UpdateRow(i, exp, value(args[4:]))
	case "remove":
		if len(args) != 3 {
			return usage("video row remove <n> <m>")
		}
		i, err := position(args[2])
		if err != nil {
			return err
		}
		return v.RemoveRow(i)
	}
	return fmt.Errorf("unknown video row command %q", args[0])
}

func (a *App) videoAt(pos string) (*models.Video, error) {
	i, err := position(pos)
	if err != nil {
		return nil, err
	}
	return a.ws.Videos.At(i)
}
