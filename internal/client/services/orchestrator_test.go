package services

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/dmitrijs2005/forestadmin/internal/client/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacility(t *testing.T, c *fakeClient) (*FacilityEditor, Deps) {
	t.Helper()
	d := testDeps(c)
	ed := NewFacilityEditor(d, NewOrchestrator(d), NewValidator())
	fillFacility(ed.Record())
	return ed, d
}

func TestSave_CapacityIsEnforcedBeforeAnyCall(t *testing.T) {
	c := newFakeClient()
	ed, _ := newFacility(t, c)
	f := ed.Record()

	files := make([]models.NewFile, 7)
	for i := range files {
		files[i] = png("img.png")
	}
	_, err := f.Images.Add(files...)
	require.ErrorIs(t, err, models.ErrCapacityExceeded)
	assert.Equal(t, 0, f.Images.Len())

	_, err = f.Map.Add(png("map1.png"))
	require.NoError(t, err)
	_, err = f.Map.Add(png("map2.png"))
	require.ErrorIs(t, err, models.ErrCapacityExceeded)

	uploads, _, saves := c.calls()
	assert.Empty(t, uploads)
	assert.Zero(t, saves)
}

func TestSave_RemovedLocalIsDiscardedRemovedPersistedIsDeleted(t *testing.T) {
	c := newFakeClient()
	c.saveID = 7
	ed, _ := newFacility(t, c)
	f := ed.Record()
	f.SeqNo = 7

	stored := f.Images.Hydrate(models.StoredFile{URL: "https://cdn.test/F/old.jpg", Sort: 1, ImageSeqNo: 11})
	added, err := f.Images.Add(png("fresh.png"))
	require.NoError(t, err)

	require.NoError(t, f.Images.Remove(added[0].CorrelationID))
	require.NoError(t, f.Images.Remove(stored[0].CorrelationID))
	require.Len(t, f.Images.Pending(), 1)

	res, err := ed.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, res.ID)

	uploads, deletes, saves := c.calls()
	assert.Empty(t, uploads, "removed local file never leaves the client")
	assert.Equal(t, []string{"old.jpg"}, deletes)
	assert.Equal(t, 1, saves)
	assert.Empty(t, f.Images.Pending())
	assert.True(t, f.DeleteSucceeded())
}

func TestSave_AssignedIDIsWrittenBackAndReused(t *testing.T) {
	c := newFakeClient()
	c.saveID = 42
	ed, _ := newFacility(t, c)
	f := ed.Record()

	_, err := f.Images.Add(png("a.png"))
	require.NoError(t, err)

	res, err := ed.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 42, res.ID)
	assert.Equal(t, 42, f.SeqNo)

	a, ok := f.Images.At(0)
	require.True(t, ok)
	assert.True(t, a.Persisted())
	assert.Equal(t, "https://cdn.test/F/a.png", a.RemoteURL)

	c.saveID = 0
	_, err = ed.Save(context.Background(), nil)
	require.NoError(t, err)

	uploads, _, _ := c.calls()
	assert.Equal(t, []string{"a.png"}, uploads, "persisted file is not uploaded twice")
	require.Len(t, c.forestSaves, 2)
	assert.Equal(t, 0, c.forestSaves[0].ForestSeqNo)
	assert.Equal(t, 42, c.forestSaves[1].ForestSeqNo)
	assert.Equal(t, 42, f.SeqNo, "missing id in the response keeps the current one")
}

func TestSave_UploadFailureIsBestEffort(t *testing.T) {
	c := newFakeClient()
	c.failUpload["bad.png"] = true
	c.saveID = 3
	ed, d := newFacility(t, c)
	f := ed.Record()

	_, err := f.Images.Add(png("good.png"), png("bad.png"))
	require.NoError(t, err)

	res, err := ed.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.UploadFailures)
	assert.False(t, f.UploadSucceeded())

	uploads, _, saves := c.calls()
	assert.ElementsMatch(t, []string{"good.png", "bad.png"}, uploads)
	assert.Equal(t, 1, saves)

	rows, err := wire.Decode[wire.ImageRow](c.forestSaves[0].XMLFileData)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "https://cdn.test/F/good.png", rows[0].URL)
	assert.Empty(t, rows[1].URL)

	bad, ok := f.Images.At(1)
	require.True(t, ok)
	assert.False(t, bad.Persisted(), "failed upload stays local for the next save")

	v := d.Dialog.View()
	assert.True(t, v.Open)
	assert.Contains(t, v.Body, msgSaved)
	assert.Contains(t, v.Body, msgUploadFailed)
}

func TestSave_LoadingClearsOnEveryPath(t *testing.T) {
	c := newFakeClient()
	ed, d := newFacility(t, c)
	f := ed.Record()

	var sawLoading atomic.Bool
	c.persistSeen = func() { sawLoading.Store(f.Loading()) }

	_, err := ed.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, sawLoading.Load())
	assert.False(t, f.Loading())

	c.saveErr = &api.RejectedError{Message: "duplicate name"}
	_, err = ed.Save(context.Background(), nil)
	require.ErrorIs(t, err, ErrPersistFailed)
	require.ErrorIs(t, err, api.ErrRejected)
	assert.False(t, f.Loading())

	v := d.Dialog.View()
	assert.Equal(t, msgSaveFailed+"\nduplicate name", v.Body)
	assert.False(t, v.Second.Visible)
}

func TestSave_PersistFailureKeepsAttachmentsLocal(t *testing.T) {
	c := newFakeClient()
	c.saveErr = errBoom
	ed, _ := newFacility(t, c)
	f := ed.Record()

	_, err := f.Images.Add(png("a.png"))
	require.NoError(t, err)

	_, err = ed.Save(context.Background(), nil)
	require.Error(t, err)

	a, _ := f.Images.At(0)
	assert.False(t, a.Persisted())
	assert.NotEmpty(t, a.RemoteURL, "uploaded location is kept")
	assert.Zero(t, f.SeqNo)
}

func TestSave_OnSuccessRunsOnFirstButton(t *testing.T) {
	c := newFakeClient()
	c.saveID = 9
	ed, d := newFacility(t, c)

	var got int
	_, err := ed.Save(context.Background(), func(ctx context.Context, id int) { got = id })
	require.NoError(t, err)
	assert.Zero(t, got, "not before the user acknowledges")

	d.Dialog.Click(context.Background(), dialog.First)
	assert.Equal(t, 9, got)
	assert.False(t, d.Dialog.IsOpen())
}

func TestSave_ProgressIsReported(t *testing.T) {
	c := newFakeClient()
	d := testDeps(c)

	done := make(chan string, 4)
	d.Progress = func(percent int, correlationID, fileName string) {
		if percent == 100 {
			done <- fileName
		}
	}
	ed := NewFacilityEditor(d, NewOrchestrator(d), NewValidator())
	fillFacility(ed.Record())
	_, err := ed.Record().Images.Add(png("a.png"))
	require.NoError(t, err)

	_, err = ed.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "a.png", <-done)
	assert.Equal(t, 100, ed.Record().Progress())
}

func TestValidateAndSave_GateMakesNoCalls(t *testing.T) {
	c := newFakeClient()
	d := testDeps(c)
	ed := NewFacilityEditor(d, NewOrchestrator(d), NewValidator())
	ed.Record().Name = "Only a name"
	_, err := ed.Record().Images.Add(png("a.png"))
	require.NoError(t, err)

	_, err = ed.ValidateAndSave(context.Background(), nil)
	require.ErrorIs(t, err, ErrValidation)

	uploads, deletes, saves := c.calls()
	assert.Empty(t, uploads)
	assert.Empty(t, deletes)
	assert.Zero(t, saves)

	v := d.Dialog.View()
	require.True(t, v.Open)
	assert.True(t, strings.HasPrefix(v.Body, msgForestRequired))
	assert.Contains(t, v.Body, "address")
}

func TestRemoveFiles_QueuesAndDeletesEveryPersisted(t *testing.T) {
	c := newFakeClient()
	c.failDelete["b.jpg"] = true
	d := testDeps(c)
	orch := NewOrchestrator(d)

	e := models.NewExperience(1, d.Policies.ExpImages)
	e.Images.Hydrate(
		models.StoredFile{URL: "https://cdn.test/E/a.jpg", Sort: 1},
		models.StoredFile{URL: "https://cdn.test/E/b.jpg", Sort: 2},
	)

	failed := orch.RemoveFiles(context.Background(), experienceTarget{e: e, client: c})
	assert.Equal(t, 1, failed)
	assert.False(t, e.DeleteSucceeded())

	_, deletes, _ := c.calls()
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg"}, deletes)
	require.Len(t, e.Images.Pending(), 1)
	assert.Equal(t, "b.jpg", e.Images.Pending()[0].RemoteName)
}

func TestFailureBody(t *testing.T) {
	assert.Equal(t, "x", failureBody("x", errBoom))
	assert.Equal(t, "x", failureBody("x", &api.RejectedError{}))
	assert.Equal(t, "x\nwhy", failureBody("x", &api.RejectedError{Message: "why"}))
}
