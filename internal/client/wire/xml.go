package wire

import (
	"encoding/xml"
	"fmt"
)

// ImageRow is one stored image of a facility or experience.
type ImageRow struct {
	URL  string `xml:"IMG_URL"`
	Sort int    `xml:"SORT"`
}

// DetailRow is one experience timestamp annotation of a video.
type DetailRow struct {
	ExpSeqNo  int    `xml:"EXP_SEQ_NO"`
	PointTime string `xml:"POINT_TIME"`
	Sort      int    `xml:"SORT"`
}

type envelope[T any] struct {
	XMLName xml.Name `xml:"ROOT"`
	Data    []T      `xml:"DATA"`
}

const indent = "  "

// Encode renders rows inside the ROOT/DATA envelope with two-space
// indentation.
func Encode[T any](rows []T) (string, error) {
	b, err := xml.MarshalIndent(envelope[T]{Data: rows}, "", indent)
	if err != nil {
		return "", fmt.Errorf("encode xml: %w", err)
	}
	return string(b), nil
}

// Decode parses an envelope produced by Encode (or by the backend).
func Decode[T any](s string) ([]T, error) {
	var env envelope[T]
	if err := xml.Unmarshal([]byte(s), &env); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return env.Data, nil
}
