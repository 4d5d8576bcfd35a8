package api

import (
	"context"
	"io"
)

// Client is the set of backend operations the editors use.
type Client interface {
	Upload(ctx context.Context, category, name string, r io.Reader, size int64, progress ProgressFunc) (UploadedFile, error)
	DeleteFile(ctx context.Context, category, name string, progress ProgressFunc) error

	SaveForest(ctx context.Context, req ForestSave) (int, error)
	SaveExperience(ctx context.Context, req ExperienceSave) (int, error)
	SaveMovie(ctx context.Context, req MovieSave) (int, error)
	SaveBoard(ctx context.Context, req BoardSave) (int, error)

	DeleteForest(ctx context.Context, forestSeqNo int) error
	DeleteExperience(ctx context.Context, expSeqNo int) error
	DeleteMovie(ctx context.Context, movieSeqNo int) error
	DeleteBoard(ctx context.Context, boardSeqNo int) error

	GetForestInfo(ctx context.Context, forestSeqNo int) (ForestInfo, error)
	GetExpList(ctx context.Context, forestSeqNo int) ([]ExpInfo, error)
	GetMovieList(ctx context.Context, forestSeqNo int) ([]MovieInfo, error)
	GetCodeList(ctx context.Context, group string) ([]CodeInfo, error)
	GetBoardDetail(ctx context.Context, boardSeqNo int) (BoardInfo, error)

	ListForests(ctx context.Context, page, size int) (Page[ForestSummary], error)
	ListBoards(ctx context.Context, page, size int) (Page[BoardSummary], error)
}

var _ Client = (*HTTPClient)(nil)

const (
	CodeGroupExpDepth1 = "G00001"
	CodeGroupExpDepth2 = "G00002"
)

type UploadedFile struct {
	URL  string
	Name string
}

type ForestSave struct {
	ForestSeqNo    int    `json:"FOREST_SEQ_NO"`
	Name           string `json:"NAME"`
	Addr1          string `json:"ADDR1"`
	Addr2          string `json:"ADDR2"`
	BusinessNumber string `json:"BUSSINESS_NUMBER"`
	Descript       string `json:"DESCRIPT"`
	SimpleDescript string `json:"SIMPLE_DESCRIPT"`
	MainYn         string `json:"MAIN_YN"`
	TelNo          string `json:"TEL_NO"`
	MapImgURL      string `json:"MAP_IMG_URL"`
	XMLFileData    string `json:"XML_FILE_DATA"`
}

type ExperienceSave struct {
	ForestSeqNo int    `json:"FOREST_SEQ_NO"`
	ExpSeqNo    int    `json:"EXP_SEQ_NO"`
	Name        string `json:"NAME"`
	Categ1      string `json:"CATEG1"`
	Categ2      string `json:"CATEG2"`
	Title       string `json:"TITLE"`
	Descript    string `json:"DESCRIPT"`
	MapX        int    `json:"MAP_X"`
	MapY        int    `json:"MAP_Y"`
	MainYn      string `json:"MAIN_YN"`
	XMLFileData string `json:"XML_FILE_DATA"`
}

type MovieSave struct {
	ForestSeqNo   int    `json:"FOREST_SEQ_NO"`
	MovieSeqNo    int    `json:"MOVIE_SEQ_NO"`
	Categ1        string `json:"CATEG1"`
	URL           string `json:"URL"`
	XMLDetailData string `json:"XML_DETAIL_DATA"`
}

type BoardSave struct {
	BoardSeqNo int    `json:"BOARD_SEQ_NO"`
	Title      string `json:"TITLE"`
	Contents   string `json:"CONTENTS"`
	Categ      string `json:"CATEG"`
	URL1       string `json:"URL_1"`
	URL2       string `json:"URL_2"`
	URL3       string `json:"URL_3"`
	UseYn      string `json:"USE_YN"`
}

type ImageInfo struct {
	ImgSeqNo int
	Sort     int
	URL      string
}

type ForestInfo struct {
	Name           string
	Addr1          string
	Addr2          string
	BusinessNumber string
	Descript       string
	SimpleDescript string
	MainYn         string
	TelNo          string
	Images         []ImageInfo
	MapImage       *ImageInfo
}

type ExpInfo struct {
	ExpSeqNo int
	Name     string
	Categ1   string
	Categ2   string
	Title    string
	Descript string
	MainYn   string
	Images   []ImageInfo
}

type MovieDetailInfo struct {
	ExpSeqNo  int
	PointTime string
	Sort      int
}

type MovieInfo struct {
	MovieSeqNo int
	Categ1     string
	URL        string
	Details    []MovieDetailInfo
}

type CodeInfo struct {
	CD   string
	Name string
}

type BoardInfo struct {
	Title    string
	Contents string
	URL1     string
	URL2     string
	URL3     string
	UseYn    string
}

type ForestSummary struct {
	ForestSeqNo    int
	Name           string
	SimpleDescript string
	MainYn         string
	ImgURL         string
}

type BoardSummary struct {
	BoardSeqNo int
	Title      string
	UseYn      string
}

// Page is one page of a list endpoint. Pages are 1-based.
type Page[T any] struct {
	Items []T
	Total int
}
