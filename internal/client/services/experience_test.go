package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExperiences(c *fakeClient) (*ExperienceList, Deps) {
	d := testDeps(c)
	return NewExperienceList(d, NewOrchestrator(d), NewValidator()), d
}

func fillExperience(e *models.Experience) {
	e.Name = "Zipline"
	e.Title = "Fly over the pines"
	e.Desc = "Two lines, 300 m."
}

func TestExperienceList_LoadHydratesAndFetchesCodes(t *testing.T) {
	c := newFakeClient()
	c.exps = []api.ExpInfo{{
		ExpSeqNo: 12, Name: "Trail", Categ1: "E", Categ2: "E2", Title: "t", Descript: "d",
		Images: []api.ImageInfo{{ImgSeqNo: 1, Sort: 1, URL: "https://cdn.test/E/trail.jpg"}},
	}}
	c.codes = map[string][]api.CodeInfo{
		api.CodeGroupExpDepth1: {{CD: "E", Name: "Experience"}, {CD: "F", Name: "Food"}},
		api.CodeGroupExpDepth2: {{CD: "E1", Name: "Walk"}, {CD: "E2", Name: "Ride"}, {CD: "F1", Name: "Cafe"}},
	}
	l, _ := newExperiences(c)

	require.NoError(t, l.Load(context.Background(), 4))
	assert.Equal(t, 4, l.ForestSeqNo())
	require.Equal(t, 1, l.Len())

	e, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, 4, e.ForestSeqNo)
	assert.Equal(t, 1, e.Images.Len())
	assert.Equal(t, []models.ExpCode{{ExpSeqNo: 12, Name: "Trail"}}, l.ExpCodes())

	assert.Len(t, l.Depth1(), 2)
	assert.Equal(t, []models.Code{{CD: "F1", Name: "Cafe"}}, l.Depth2For("F"))
}

func TestExperienceList_CategoryChangeResetsSubCategory(t *testing.T) {
	l, _ := newExperiences(newFakeClient())
	l.SetCodes(
		[]models.Code{{CD: "E"}, {CD: "F"}},
		[]models.Code{{CD: "E1"}, {CD: "E2"}, {CD: "F1"}, {CD: "F2"}},
	)
	e := l.AddEmpty()
	assert.Equal(t, models.DefaultExpCateg1, e.Categ1)
	assert.Equal(t, models.DefaultExpCateg2, e.Categ2)

	f := "F"
	l.Apply(e, models.ExperiencePatch{Categ1: &f})
	assert.Equal(t, "F1", e.Categ2)

	sub := "F2"
	l.Apply(e, models.ExperiencePatch{Categ2: &sub})
	l.Apply(e, models.ExperiencePatch{Categ1: &f})
	assert.Equal(t, "F2", e.Categ2, "unchanged category keeps the sub category")
}

func TestExperienceList_SaveNeedsFacility(t *testing.T) {
	c := newFakeClient()
	l, d := newExperiences(c)
	e := l.AddEmpty()
	fillExperience(e)

	_, err := l.ValidateAndSave(context.Background(), e, nil)
	require.ErrorIs(t, err, ErrNoFacility)
	assert.Equal(t, msgSaveFacilityFirst, d.Dialog.View().Body)
	_, _, saves := c.calls()
	assert.Zero(t, saves)
}

func TestExperienceList_SaveWritesBackIDAndUploads(t *testing.T) {
	c := newFakeClient()
	c.saveID = 55
	l, _ := newExperiences(c)
	l.SetForest(4)
	e := l.AddEmpty()
	fillExperience(e)
	_, err := e.Images.Add(png("a.png"), png("b.png"))
	require.NoError(t, err)

	res, err := l.ValidateAndSave(context.Background(), e, nil)
	require.NoError(t, err)
	assert.Equal(t, 55, res.ID)
	assert.Equal(t, 55, e.SeqNo)
	assert.Equal(t, []models.ExpCode{{ExpSeqNo: 55, Name: "Zipline"}}, l.ExpCodes())

	require.Len(t, c.expSaves, 1)
	assert.Equal(t, 4, c.expSaves[0].ForestSeqNo)
	assert.Contains(t, c.expSaves[0].XMLFileData, "https://cdn.test/E/a.png")
	assert.Contains(t, c.expSaves[0].XMLFileData, "https://cdn.test/E/b.png")
}

func TestExperienceList_ValidationListsMissing(t *testing.T) {
	c := newFakeClient()
	l, d := newExperiences(c)
	l.SetForest(4)
	e := l.AddEmpty()
	e.Name = "Zipline"

	_, err := l.ValidateAndSave(context.Background(), e, nil)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, msgExperienceRequired+"\nMissing: title, description", d.Dialog.View().Body)
}

func TestExperienceList_RemoveUnsavedMakesNoCalls(t *testing.T) {
	c := newFakeClient()
	l, d := newExperiences(c)
	e := l.AddEmpty()
	_, err := e.Images.Add(png("a.png"))
	require.NoError(t, err)

	require.NoError(t, l.Remove(context.Background(), e))
	assert.Zero(t, l.Len())
	assert.Empty(t, c.recDeletes)
	_, deletes, _ := c.calls()
	assert.Empty(t, deletes)
	assert.Equal(t, msgDeleted, d.Dialog.View().Body)
}

func TestExperienceList_RequestRemoveConfirms(t *testing.T) {
	c := newFakeClient()
	l, d := newExperiences(c)
	l.Hydrate([]api.ExpInfo{{ExpSeqNo: 3, Name: "x"}})
	e, _ := l.At(0)

	l.RequestRemove(e)
	v := d.Dialog.View()
	assert.Equal(t, msgConfirmDelete, v.Body)
	assert.True(t, v.Second.Visible)

	d.Dialog.Click(context.Background(), dialog.Second)
	assert.Equal(t, 1, l.Len(), "second button cancels")

	l.RequestRemove(e)
	d.Dialog.Click(context.Background(), dialog.First)
	assert.Zero(t, l.Len())
	assert.Equal(t, []string{"exp:3"}, c.recDeletes)
}
