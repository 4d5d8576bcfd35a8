package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveForest_SendsFieldsAndReadsID(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/setForestSave", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, map[string]any{"RESULT": true, "RET_FOREST_SEQ_NO": "41"})
	})

	id, err := c.SaveForest(context.Background(), ForestSave{Name: "Pine", BusinessNumber: "1-2", XMLFileData: "<ROOT></ROOT>"})
	require.NoError(t, err)
	assert.Equal(t, 41, id)
	assert.Equal(t, "Pine", body["NAME"])
	assert.Equal(t, "1-2", body["BUSSINESS_NUMBER"])
	assert.Equal(t, float64(0), body["FOREST_SEQ_NO"])
	assert.Equal(t, "<ROOT></ROOT>", body["XML_FILE_DATA"])
}

func TestSaveBoard_ResultCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"RESULT_CODE": "00", "RET_BOARD_SEQ_NO": 5})
	})
	id, err := c.SaveBoard(context.Background(), BoardSave{Title: "t", Categ: "N"})
	require.NoError(t, err)
	assert.Equal(t, 5, id)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"RESULT_CODE": "90", "RESULT_MSG": "duplicate title"})
	})
	_, err = c.SaveBoard(context.Background(), BoardSave{Title: "t"})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "duplicate title")
}

func TestDeleteEndpoints(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		got = append(got, r.URL.Path+"?"+r.URL.RawQuery)
		writeJSON(w, map[string]any{"RESULT": true})
	})
	ctx := context.Background()

	require.NoError(t, c.DeleteForest(ctx, 1))
	require.NoError(t, c.DeleteExperience(ctx, 2))
	require.NoError(t, c.DeleteMovie(ctx, 3))
	require.NoError(t, c.DeleteBoard(ctx, 4))
	assert.Equal(t, []string{
		"/setForestDelete?FOREST_SEQ_NO=1",
		"/setExpDelete?EXP_SEQ_NO=2",
		"/setMovieDelete?MOVIE_SEQ_NO=3",
		"/setBoardDelete?BOARD_SEQ_NO=4",
	}, got)
}

func TestGetForestInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", r.URL.Query().Get("FOREST_SEQ_NO"))
		writeJSON(w, map[string]any{
			"RESULT": true, "NAME": "Pine", "TEL_NO": "02", "BUSSINESS_NUMBER": "B",
			"IMG_LIST": []any{
				map[string]any{"IMG_SEQ_NO": 1, "SORT": 2, "IMG_URL": "https://cdn/f/a.png"},
			},
			"MAP_IMG": map[string]any{"IMG_SEQ_NO": 3, "SORT": 1, "IMG_URL": "https://cdn/m/map.png"},
		})
	})

	info, err := c.GetForestInfo(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Pine", info.Name)
	assert.Equal(t, "B", info.BusinessNumber)
	assert.Equal(t, []ImageInfo{{ImgSeqNo: 1, Sort: 2, URL: "https://cdn/f/a.png"}}, info.Images)
	require.NotNil(t, info.MapImage)
	assert.Equal(t, "https://cdn/m/map.png", info.MapImage.URL)
}

func TestGetMovieList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"RESULT": true,
			"LIST": []any{map[string]any{
				"MOVIE_SEQ_NO": 4, "CATEG1": "B", "URL": "https://cdn/v/V_1.mp4",
				"MOVIE_DETAIL_LIST": []any{
					map[string]any{"EXP_SEQ_NO": 11, "POINT_TIME": "00:30", "SORT": 1},
				},
			}},
		})
	})

	list, err := c.GetMovieList(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Categ1)
	assert.Equal(t, []MovieDetailInfo{{ExpSeqNo: 11, PointTime: "00:30", Sort: 1}}, list[0].Details)
}

func TestGetExpListAndCodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/getExpList":
			writeJSON(w, map[string]any{"RESULT": true, "LIST": []any{
				map[string]any{"EXP_SEQ_NO": "7", "NAME": "Walk", "CATEG1": "E", "CATEG2": "E2", "IMG_LIST": []any{}},
			}})
		case "/getCodeList":
			assert.Equal(t, CodeGroupExpDepth1, r.URL.Query().Get("GROUP_CD"))
			writeJSON(w, map[string]any{"RESULT": true, "LIST": []any{
				map[string]any{"CD": "E", "NAME": "Experience"},
			}})
		}
	})

	exps, err := c.GetExpList(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, 7, exps[0].ExpSeqNo)
	assert.Equal(t, "E2", exps[0].Categ2)
	assert.Empty(t, exps[0].Images)

	codes, err := c.GetCodeList(context.Background(), CodeGroupExpDepth1)
	require.NoError(t, err)
	assert.Equal(t, []CodeInfo{{CD: "E", Name: "Experience"}}, codes)
}

func TestListBoards(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("PAGE_NO"))
		assert.Equal(t, "10", q.Get("PAGE_SIZE"))
		assert.Equal(t, "N", q.Get("CATEG"))
		writeJSON(w, map[string]any{"RESULT": true, "TOTAL_COUNT": 11, "LIST": []any{
			map[string]any{"BOARD_SEQ_NO": 1, "TITLE": "Hello", "USE_YN": "Y"},
		}})
	})

	p, err := c.ListBoards(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 11, p.Total)
	assert.Equal(t, []BoardSummary{{BoardSeqNo: 1, Title: "Hello", UseYn: "Y"}}, p.Items)
}

func TestGetBoardDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"RESULT": true, "TITLE": "T", "CONTENTS": "C", "URL_2": "u2", "USE_YN": "N"})
	})
	b, err := c.GetBoardDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, BoardInfo{Title: "T", Contents: "C", URL2: "u2", UseYn: "N"}, b)
}
