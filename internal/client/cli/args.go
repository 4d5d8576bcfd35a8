package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/client/services"
)

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

// position parses a 1-based list position into a 0-based index.
func position(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad position %q", s)
	}
	return n - 1, nil
}

func number(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return n, nil
}

// page parses an optional page number, defaulting to 1.
func page(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := number(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("bad page %q", args[0])
	}
	return n, nil
}

// value joins the remaining tokens so values may contain spaces.
func value(args []string) string {
	return strings.Join(args, " ")
}

func newFiles(paths []string) []models.NewFile {
	out := make([]models.NewFile, 0, len(paths))
	for _, p := range paths {
		out = append(out, models.NewFile{Name: filepath.Base(p), Handle: models.LocalHandle{Path: p}})
	}
	return out
}

func attachmentAt(set *models.AttachmentSet, pos string) (*models.Attachment, error) {
	i, err := position(pos)
	if err != nil {
		return nil, err
	}
	a, ok := set.At(i)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", models.ErrAttachmentNotFound, pos)
	}
	return a, nil
}

// quiet drops errors the dialog has already reported.
func quiet(err error) error {
	switch {
	case err == nil,
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrPersistFailed),
		errors.Is(err, services.ErrNoFacility),
		errors.Is(err, services.ErrDuplicateCategory),
		errors.Is(err, services.ErrRemoveFailed):
		return nil
	}
	return err
}
