package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

func (c *HTTPClient) call(ctx context.Context, r Request) (Response, error) {
	resp, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", r.Path, err)
	}
	return resp, nil
}

// read is call for lookup endpoints, some of which omit RESULT entirely.
// Only an explicit refusal is an error.
func (c *HTTPClient) read(ctx context.Context, r Request) (Response, error) {
	resp, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	if resp.Refused() {
		return nil, fmt.Errorf("%s: %w", r.Path, resp.Err())
	}
	return resp, nil
}

func (c *HTTPClient) Upload(ctx context.Context, category, name string, r io.Reader, size int64, progress ProgressFunc) (UploadedFile, error) {
	resp, err := c.call(ctx, Request{
		Path:   "/upload",
		Method: http.MethodPost,
		Multipart: &Multipart{
			Fields: []FormField{{Name: "CATEG", Value: category}},
			File:   &FilePart{Field: "FILE", Name: name, Reader: r, Size: size},
		},
		Progress: progress,
	})
	if err != nil {
		return UploadedFile{}, err
	}

	files := resp.List("FILE_INFO")
	if len(files) == 0 {
		return UploadedFile{}, fmt.Errorf("%w: /upload: no FILE_INFO", ErrMalformedResponse)
	}
	return UploadedFile{URL: files[0].String("S3_URL"), Name: files[0].String("S3_FILE_NAME")}, nil
}

func (c *HTTPClient) DeleteFile(ctx context.Context, category, name string, progress ProgressFunc) error {
	_, err := c.call(ctx, Request{
		Path:     "/deleteFile",
		Method:   http.MethodPost,
		Data:     map[string]string{"CATEG": category, "FILE": name},
		Progress: progress,
	})
	return err
}

func (c *HTTPClient) save(ctx context.Context, path string, data any, idKey string) (int, error) {
	resp, err := c.call(ctx, Request{Path: path, Method: http.MethodPost, Data: data})
	if err != nil {
		return 0, err
	}
	return resp.IntOr(idKey, 0), nil
}

func (c *HTTPClient) SaveForest(ctx context.Context, req ForestSave) (int, error) {
	return c.save(ctx, "/setForestSave", req, "RET_FOREST_SEQ_NO")
}

func (c *HTTPClient) SaveExperience(ctx context.Context, req ExperienceSave) (int, error) {
	return c.save(ctx, "/setExpSave", req, "RET_EXP_SEQ_NO")
}

func (c *HTTPClient) SaveMovie(ctx context.Context, req MovieSave) (int, error) {
	return c.save(ctx, "/setMovieSave", req, "RET_MOVIE_SEQ_NO")
}

func (c *HTTPClient) SaveBoard(ctx context.Context, req BoardSave) (int, error) {
	return c.save(ctx, "/setBoardSave", req, "RET_BOARD_SEQ_NO")
}

func (c *HTTPClient) remove(ctx context.Context, path, key string, id int) error {
	_, err := c.call(ctx, Request{Path: path, Params: url.Values{key: {strconv.Itoa(id)}}})
	return err
}

func (c *HTTPClient) DeleteForest(ctx context.Context, forestSeqNo int) error {
	return c.remove(ctx, "/setForestDelete", "FOREST_SEQ_NO", forestSeqNo)
}

func (c *HTTPClient) DeleteExperience(ctx context.Context, expSeqNo int) error {
	return c.remove(ctx, "/setExpDelete", "EXP_SEQ_NO", expSeqNo)
}

func (c *HTTPClient) DeleteMovie(ctx context.Context, movieSeqNo int) error {
	return c.remove(ctx, "/setMovieDelete", "MOVIE_SEQ_NO", movieSeqNo)
}

func (c *HTTPClient) DeleteBoard(ctx context.Context, boardSeqNo int) error {
	return c.remove(ctx, "/setBoardDelete", "BOARD_SEQ_NO", boardSeqNo)
}

func (c *HTTPClient) GetForestInfo(ctx context.Context, forestSeqNo int) (ForestInfo, error) {
	resp, err := c.read(ctx, Request{
		Path:   "/getForestInfo",
		Params: url.Values{"FOREST_SEQ_NO": {strconv.Itoa(forestSeqNo)}},
	})
	if err != nil {
		return ForestInfo{}, err
	}

	info := ForestInfo{
		Name:           resp.String("NAME"),
		Addr1:          resp.String("ADDR1"),
		Addr2:          resp.String("ADDR2"),
		BusinessNumber: resp.String("BUSSINESS_NUMBER"),
		Descript:       resp.String("DESCRIPT"),
		SimpleDescript: resp.String("SIMPLE_DESCRIPT"),
		MainYn:         resp.String("MAIN_YN"),
		TelNo:          resp.String("TEL_NO"),
		Images:         images(resp.List("IMG_LIST")),
	}
	if m, ok := resp.Object("MAP_IMG"); ok {
		img := image(m)
		info.MapImage = &img
	}
	return info, nil
}

func (c *HTTPClient) GetExpList(ctx context.Context, forestSeqNo int) ([]ExpInfo, error) {
	resp, err := c.read(ctx, Request{
		Path:   "/getExpList",
		Params: url.Values{"FOREST_SEQ_NO": {strconv.Itoa(forestSeqNo)}},
	})
	if err != nil {
		return nil, err
	}

	var out []ExpInfo
	for _, r := range resp.List("LIST") {
		out = append(out, ExpInfo{
			ExpSeqNo: r.IntOr("EXP_SEQ_NO", 0),
			Name:     r.String("NAME"),
			Categ1:   r.String("CATEG1"),
			Categ2:   r.String("CATEG2"),
			Title:    r.String("TITLE"),
			Descript: r.String("DESCRIPT"),
			MainYn:   r.String("MAIN_YN"),
			Images:   images(r.List("IMG_LIST")),
		})
	}
	return out, nil
}

func (c *HTTPClient) GetMovieList(ctx context.Context, forestSeqNo int) ([]MovieInfo, error) {
	resp, err := c.read(ctx, Request{
		Path:   "/getMovieList",
		Params: url.Values{"FOREST_SEQ_NO": {strconv.Itoa(forestSeqNo)}},
	})
	if err != nil {
		return nil, err
	}

	var out []MovieInfo
	for _, r := range resp.List("LIST") {
		m := MovieInfo{
			MovieSeqNo: r.IntOr("MOVIE_SEQ_NO", 0),
			Categ1:     r.String("CATEG1"),
			URL:        r.String("URL"),
		}
		for _, d := range r.List("MOVIE_DETAIL_LIST") {
			m.Details = append(m.Details, MovieDetailInfo{
				ExpSeqNo:  d.IntOr("EXP_SEQ_NO", 0),
				PointTime: d.String("POINT_TIME"),
				Sort:      d.IntOr("SORT", 0),
			})
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *HTTPClient) GetCodeList(ctx context.Context, group string) ([]CodeInfo, error) {
	resp, err := c.read(ctx, Request{Path: "/getCodeList", Params: url.Values{"GROUP_CD": {group}}})
	if err != nil {
		return nil, err
	}

	var out []CodeInfo
	for _, r := range resp.List("LIST") {
		out = append(out, CodeInfo{CD: r.String("CD"), Name: r.String("NAME")})
	}
	return out, nil
}

func (c *HTTPClient) GetBoardDetail(ctx context.Context, boardSeqNo int) (BoardInfo, error) {
	resp, err := c.read(ctx, Request{
		Path:   "/getBoardDetail",
		Params: url.Values{"BOARD_SEQ_NO": {strconv.Itoa(boardSeqNo)}},
	})
	if err != nil {
		return BoardInfo{}, err
	}
	return BoardInfo{
		Title:    resp.String("TITLE"),
		Contents: resp.String("CONTENTS"),
		URL1:     resp.String("URL_1"),
		URL2:     resp.String("URL_2"),
		URL3:     resp.String("URL_3"),
		UseYn:    resp.String("USE_YN"),
	}, nil
}

func pageParams(page, size int) url.Values {
	return url.Values{"PAGE_NO": {strconv.Itoa(page)}, "PAGE_SIZE": {strconv.Itoa(size)}}
}

func (c *HTTPClient) ListForests(ctx context.Context, page, size int) (Page[ForestSummary], error) {
	resp, err := c.read(ctx, Request{Path: "/getForestList", Params: pageParams(page, size)})
	if err != nil {
		return Page[ForestSummary]{}, err
	}

	p := Page[ForestSummary]{Total: resp.IntOr("TOTAL_COUNT", 0)}
	for _, r := range resp.List("LIST") {
		p.Items = append(p.Items, ForestSummary{
			ForestSeqNo:    r.IntOr("FOREST_SEQ_NO", 0),
			Name:           r.String("NAME"),
			SimpleDescript: r.String("SIMPLE_DESCRIPT"),
			MainYn:         r.String("MAIN_YN"),
			ImgURL:         r.String("IMG_URL"),
		})
	}
	return p, nil
}

func (c *HTTPClient) ListBoards(ctx context.Context, page, size int) (Page[BoardSummary], error) {
	params := pageParams(page, size)
	params.Set("CATEG", "N")
	resp, err := c.read(ctx, Request{Path: "/getBoardList", Params: params})
	if err != nil {
		return Page[BoardSummary]{}, err
	}

	p := Page[BoardSummary]{Total: resp.IntOr("TOTAL_COUNT", 0)}
	for _, r := range resp.List("LIST") {
		p.Items = append(p.Items, BoardSummary{
			BoardSeqNo: r.IntOr("BOARD_SEQ_NO", 0),
			Title:      r.String("TITLE"),
			UseYn:      r.String("USE_YN"),
		})
	}
	return p, nil
}

func image(r Response) ImageInfo {
	return ImageInfo{ImgSeqNo: r.IntOr("IMG_SEQ_NO", 0), Sort: r.IntOr("SORT", 0), URL: r.String("IMG_URL")}
}

func images(list []Response) []ImageInfo {
	out := make([]ImageInfo, 0, len(list))
	for _, r := range list {
		out = append(out, image(r))
	}
	return out
}
