package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/forestadmin/internal/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded   = errors.New("attachment limit exceeded")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrNoLocalContent     = errors.New("attachment has no local content")
)

// Category is the storage namespace of an attachment set; it is sent as
// CATEG to /upload and /deleteFile.
type Category string

const (
	CategoryForestImage Category = "F"
	CategoryForestMap   Category = "M"
	CategoryExperience  Category = "E"
	CategoryVideo       Category = "V"
)

// Source tells whether an attachment already exists remotely.
type Source string

const (
	SourcePersisted Source = "persisted"
	SourceLocal     Source = "local"
)

// MediaKind restricts what a set accepts. The empty kind accepts anything.
type MediaKind string

const (
	MediaAny   MediaKind = ""
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Policy bounds an attachment set. Zero values mean "no bound".
type Policy struct {
	Limit    int
	MaxBytes int64
	Kind     MediaKind
}

// LocalHandle points at the bytes of a newly added file: either an
// in-memory buffer or a path on disk.
type LocalHandle struct {
	Path string
	Data []byte
}

func (h LocalHandle) IsZero() bool {
	return h.Path == "" && h.Data == nil
}

// Open returns the content and its size.
func (h LocalHandle) Open() (io.ReadCloser, int64, error) {
	if h.Data != nil {
		return io.NopCloser(bytes.NewReader(h.Data)), int64(len(h.Data)), nil
	}
	if h.Path == "" {
		return nil, 0, ErrNoLocalContent
	}
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, 0, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, st.Size(), nil
}

// DetectKind sniffs the media kind of the handle's content.
func DetectKind(h LocalHandle) (MediaKind, string, error) {
	r, _, err := h.Open()
	if err != nil {
		return MediaAny, "", err
	}
	defer r.Close()

	m, err := mimetype.DetectReader(r)
	if err != nil {
		return MediaAny, "", err
	}
	mime := m.String()
	switch {
	case strings.HasPrefix(mime, "image/"):
		return MediaImage, mime, nil
	case strings.HasPrefix(mime, "video/"):
		return MediaVideo, mime, nil
	default:
		return MediaAny, mime, nil
	}
}

// Attachment is one file of an attachment set. Its fields are only mutated
// through the owning AttachmentSet, in place, so pointers handed out by the
// set stay valid across uploads.
type Attachment struct {
	CorrelationID string
	Name          string
	RemoteURL     string
	RemoteName    string
	Sort          int
	ImageSeqNo    int
	Source        Source
	Local         LocalHandle
}

func (a *Attachment) Persisted() bool { return a.Source == SourcePersisted }

// NewFile is a file the user picked.
type NewFile struct {
	Name   string
	Handle LocalHandle
}

// StoredFile is a file the server already knows about.
type StoredFile struct {
	URL        string
	Sort       int
	ImageSeqNo int
}

// AttachmentSet is an ordered collection of attachments plus the
// attachments removed by the user that still have to be deleted remotely.
// It is safe for concurrent use.
type AttachmentSet struct {
	mu       sync.Mutex
	category Category
	policy   Policy
	active   []*Attachment
	pending  []*Attachment
}

func NewAttachmentSet(category Category, policy Policy) *AttachmentSet {
	return &AttachmentSet{category: category, policy: policy}
}

func (s *AttachmentSet) Category() Category { return s.category }
func (s *AttachmentSet) Policy() Policy     { return s.policy }

// Hydrate appends attachments that already exist remotely. Server data is
// taken as is: the limit is not applied.
func (s *AttachmentSet) Hydrate(files ...StoredFile) []*Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Attachment, 0, len(files))
	for _, f := range files {
		name := common.FileNameFromURL(f.URL)
		a := &Attachment{
			CorrelationID: uuid.NewString(),
			Name:          name,
			RemoteURL:     f.URL,
			RemoteName:    name,
			Sort:          f.Sort,
			ImageSeqNo:    f.ImageSeqNo,
			Source:        SourcePersisted,
		}
		s.active = append(s.active, a)
		out = append(out, a)
	}
	return out
}

// Add appends local files, numbering them after the current active count.
// The whole batch is rejected when it would exceed the limit or when any
// file breaks the size or kind policy.
func (s *AttachmentSet) Add(files ...NewFile) ([]*Attachment, error) {
	for _, f := range files {
		if err := s.admit(f); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy.Limit > 0 && len(s.active)+len(files) > s.policy.Limit {
		return nil, fmt.Errorf("%w: at most %d file(s)", ErrCapacityExceeded, s.policy.Limit)
	}

	base := len(s.active)
	out := make([]*Attachment, 0, len(files))
	for i, f := range files {
		a := &Attachment{
			CorrelationID: uuid.NewString(),
			Name:          f.Name,
			Sort:          base + 1 + i,
			Source:        SourceLocal,
			Local:         f.Handle,
		}
		s.active = append(s.active, a)
		out = append(out, a)
	}
	return out, nil
}

func (s *AttachmentSet) admit(f NewFile) error {
	if s.policy.MaxBytes > 0 {
		r, size, err := f.Handle.Open()
		if err != nil {
			return fmt.Errorf("open %s: %w", f.Name, err)
		}
		r.Close()
		if size > s.policy.MaxBytes {
			return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, f.Name, size, s.policy.MaxBytes)
		}
	}
	if s.policy.Kind != MediaAny {
		kind, mime, err := DetectKind(f.Handle)
		if err != nil {
			return fmt.Errorf("detect %s: %w", f.Name, err)
		}
		if kind != s.policy.Kind {
			return fmt.Errorf("%w: %s is %s, want %s/*", ErrUnsupportedType, f.Name, mime, s.policy.Kind)
		}
	}
	return nil
}

// Remove takes an attachment out of the active list. Persisted attachments
// are queued for remote deletion; local ones are dropped.
func (s *AttachmentSet) Remove(correlationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.active, correlationID)
	if i < 0 {
		return ErrAttachmentNotFound
	}
	a := s.active[i]
	if a.Persisted() {
		cp := *a
		s.pending = append(s.pending, &cp)
	}
	s.active = append(s.active[:i], s.active[i+1:]...)
	return nil
}

// Resequence sets one attachment's sort value. Siblings are not renumbered.
func (s *AttachmentSet) Resequence(correlationID string, sort int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.active, correlationID)
	if i < 0 {
		return ErrAttachmentNotFound
	}
	s.active[i].Sort = sort
	return nil
}

// CompleteUpload records the remote location of an uploaded attachment.
func (s *AttachmentSet) CompleteUpload(correlationID, url, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.active, correlationID)
	if i < 0 {
		return ErrAttachmentNotFound
	}
	a := s.active[i]
	a.RemoteURL = url
	a.RemoteName = name
	a.Name = name
	return nil
}

// ConfirmDeleted drops an attachment from the pending-deletion list.
func (s *AttachmentSet) ConfirmDeleted(correlationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.pending, correlationID)
	if i < 0 {
		return ErrAttachmentNotFound
	}
	s.pending = append(s.pending[:i], s.pending[i+1:]...)
	return nil
}

// MarkPersisted flips every uploaded local attachment to persisted and
// returns them.
func (s *AttachmentSet) MarkPersisted() []*Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Attachment
	for _, a := range s.active {
		if a.Source != SourcePersisted && a.RemoteURL != "" {
			a.Source = SourcePersisted
			a.Local = LocalHandle{}
			out = append(out, a)
		}
	}
	return out
}

func (s *AttachmentSet) Find(correlationID string) (*Attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.active, correlationID); i >= 0 {
		return s.active[i], true
	}
	return nil, false
}

func (s *AttachmentSet) FindPending(correlationID string) (*Attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.pending, correlationID); i >= 0 {
		return s.pending[i], true
	}
	return nil, false
}

// At returns the n-th active attachment (0-based).
func (s *AttachmentSet) At(n int) (*Attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 || n >= len(s.active) {
		return nil, false
	}
	return s.active[n], true
}

func (s *AttachmentSet) Active() []*Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Attachment(nil), s.active...)
}

func (s *AttachmentSet) Pending() []*Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Attachment(nil), s.pending...)
}

// Unsent returns the active attachments that have not been persisted yet.
func (s *AttachmentSet) Unsent() []*Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Attachment
	for _, a := range s.active {
		if a.Source != SourcePersisted {
			out = append(out, a)
		}
	}
	return out
}

func (s *AttachmentSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// First returns the first active attachment's URL, or "" when empty.
func (s *AttachmentSet) FirstURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.active) == 0 {
		return ""
	}
	return s.active[0].RemoteURL
}

func (s *AttachmentSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.pending = nil
}

func indexOf(list []*Attachment, correlationID string) int {
	for i, a := range list {
		if a.CorrelationID == correlationID {
			return i
		}
	}
	return -1
}
