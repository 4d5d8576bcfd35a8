package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/forestadmin/internal/client/api"
	"github.com/dmitrijs2005/forestadmin/internal/client/dialog"
	"github.com/dmitrijs2005/forestadmin/internal/client/models"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	mp4Bytes = []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2")

	errBoom = errors.New("boom")
)

func png(name string) models.NewFile {
	return models.NewFile{Name: name, Handle: models.LocalHandle{Data: pngBytes}}
}

func mp4(name string) models.NewFile {
	return models.NewFile{Name: name, Handle: models.LocalHandle{Data: mp4Bytes}}
}

// fakeClient records calls and answers from its fields. Methods it does
// not override panic through the nil embedded interface.
type fakeClient struct {
	api.Client

	mu sync.Mutex

	uploads     []string
	failUpload  map[string]bool
	deletes     []string
	failDelete  map[string]bool
	forestSaves []api.ForestSave
	expSaves    []api.ExperienceSave
	movieSaves  []api.MovieSave
	boardSaves  []api.BoardSave
	recDeletes  []string

	saveID      int
	saveErr     error
	recDelErr   error
	forest      api.ForestInfo
	exps        []api.ExpInfo
	movies      []api.MovieInfo
	codes       map[string][]api.CodeInfo
	board       api.BoardInfo
	forestPage  api.Page[api.ForestSummary]
	persistSeen func()
}

func newFakeClient() *fakeClient {
	return &fakeClient{failUpload: map[string]bool{}, failDelete: map[string]bool{}}
}

func (f *fakeClient) Upload(ctx context.Context, category, name string, r io.Reader, size int64, progress api.ProgressFunc) (api.UploadedFile, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return api.UploadedFile{}, err
	}
	if progress != nil {
		progress(api.ProgressEvent{Loaded: size, Total: size, Percent: 100})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, name)
	if f.failUpload[name] {
		return api.UploadedFile{}, fmt.Errorf("%w: upload", api.ErrUnavailable)
	}
	return api.UploadedFile{URL: "https://cdn.test/" + category + "/" + name, Name: "srv-" + name}, nil
}

func (f *fakeClient) DeleteFile(ctx context.Context, category, name string, progress api.ProgressFunc) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, name)
	if f.failDelete[name] {
		return errBoom
	}
	return nil
}

func (f *fakeClient) persisted() {
	if f.persistSeen != nil {
		f.persistSeen()
	}
}

func (f *fakeClient) SaveForest(ctx context.Context, req api.ForestSave) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persisted()
	f.forestSaves = append(f.forestSaves, req)
	return f.saveID, f.saveErr
}

func (f *fakeClient) SaveExperience(ctx context.Context, req api.ExperienceSave) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persisted()
	f.expSaves = append(f.expSaves, req)
	return f.saveID, f.saveErr
}

func (f *fakeClient) SaveMovie(ctx context.Context, req api.MovieSave) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persisted()
	f.movieSaves = append(f.movieSaves, req)
	return f.saveID, f.saveErr
}

func (f *fakeClient) SaveBoard(ctx context.Context, req api.BoardSave) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persisted()
	f.boardSaves = append(f.boardSaves, req)
	return f.saveID, f.saveErr
}

func (f *fakeClient) recDelete(kind string, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recDeletes = append(f.recDeletes, fmt.Sprintf("%s:%d", kind, id))
	return f.recDelErr
}

func (f *fakeClient) DeleteForest(ctx context.Context, id int) error {
	return f.recDelete("forest", id)
}

func (f *fakeClient) DeleteExperience(ctx context.Context, id int) error {
	return f.recDelete("exp", id)
}

func (f *fakeClient) DeleteMovie(ctx context.Context, id int) error {
	return f.recDelete("movie", id)
}

func (f *fakeClient) DeleteBoard(ctx context.Context, id int) error {
	return f.recDelete("board", id)
}

func (f *fakeClient) GetForestInfo(ctx context.Context, id int) (api.ForestInfo, error) {
	return f.forest, nil
}

func (f *fakeClient) GetExpList(ctx context.Context, id int) ([]api.ExpInfo, error) {
	return f.exps, nil
}

func (f *fakeClient) GetMovieList(ctx context.Context, id int) ([]api.MovieInfo, error) {
	return f.movies, nil
}

func (f *fakeClient) GetCodeList(ctx context.Context, group string) ([]api.CodeInfo, error) {
	return f.codes[group], nil
}

func (f *fakeClient) GetBoardDetail(ctx context.Context, id int) (api.BoardInfo, error) {
	return f.board, nil
}

func (f *fakeClient) ListForests(ctx context.Context, page, size int) (api.Page[api.ForestSummary], error) {
	return f.forestPage, nil
}

func (f *fakeClient) calls() (uploads, deletes []string, saves int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saves = len(f.forestSaves) + len(f.expSaves) + len(f.movieSaves) + len(f.boardSaves)
	return append([]string(nil), f.uploads...), append([]string(nil), f.deletes...), saves
}

func testDeps(c *fakeClient) Deps {
	return Deps{
		Client:   c,
		Dialog:   dialog.New(),
		Policies: DefaultPolicies(6, 1<<20, 1<<20),
	}
}

func fillFacility(f *models.Facility) {
	f.Name = "Pine Hill"
	f.Addr1 = "1 Forest Rd"
	f.Addr2 = "Cabin 3"
	f.TelNo = "010-0000-0000"
	f.BusinessNum = "123-45-67890"
	f.Desc = "A quiet forest."
	f.SimpleDesc = "Quiet."
}
