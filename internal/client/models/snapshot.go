package models

// Snapshots are plain, JSON-friendly copies of the editable state. They
// carry no transient save flags and no callbacks. In-memory local content
// cannot be restored; only a local path survives.

type AttachmentSnapshot struct {
	CorrelationID string `json:"correlation_id"`
	Name          string `json:"name"`
	RemoteURL     string `json:"remote_url,omitempty"`
	RemoteName    string `json:"remote_name,omitempty"`
	Sort          int    `json:"sort"`
	ImageSeqNo    int    `json:"image_seq_no,omitempty"`
	Source        Source `json:"source"`
	LocalPath     string `json:"local_path,omitempty"`
}

type AttachmentSetSnapshot struct {
	Category Category             `json:"category"`
	Active   []AttachmentSnapshot `json:"active"`
	Pending  []AttachmentSnapshot `json:"pending,omitempty"`
}

func (s *AttachmentSet) Snapshot() AttachmentSetSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AttachmentSetSnapshot{
		Category: s.category,
		Active:   snapshotList(s.active),
		Pending:  snapshotList(s.pending),
	}
}

// Restore replaces the contents of the set. The policy is kept.
func (s *AttachmentSet) Restore(snap AttachmentSetSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = restoreList(snap.Active)
	s.pending = restoreList(snap.Pending)
}

func snapshotList(list []*Attachment) []AttachmentSnapshot {
	out := make([]AttachmentSnapshot, 0, len(list))
	for _, a := range list {
		out = append(out, AttachmentSnapshot{
			CorrelationID: a.CorrelationID,
			Name:          a.Name,
			RemoteURL:     a.RemoteURL,
			RemoteName:    a.RemoteName,
			Sort:          a.Sort,
			ImageSeqNo:    a.ImageSeqNo,
			Source:        a.Source,
			LocalPath:     a.Local.Path,
		})
	}
	return out
}

func restoreList(list []AttachmentSnapshot) []*Attachment {
	out := make([]*Attachment, 0, len(list))
	for _, a := range list {
		out = append(out, &Attachment{
			CorrelationID: a.CorrelationID,
			Name:          a.Name,
			RemoteURL:     a.RemoteURL,
			RemoteName:    a.RemoteName,
			Sort:          a.Sort,
			ImageSeqNo:    a.ImageSeqNo,
			Source:        a.Source,
			Local:         LocalHandle{Path: a.LocalPath},
		})
	}
	return out
}

type FacilitySnapshot struct {
	SeqNo       int                   `json:"seq_no"`
	Name        string                `json:"name"`
	MainYn      string                `json:"main_yn"`
	Addr1       string                `json:"addr1"`
	Addr2       string                `json:"addr2"`
	TelNo       string                `json:"tel_no"`
	BusinessNum string                `json:"business_num"`
	Desc        string                `json:"desc"`
	SimpleDesc  string                `json:"simple_desc"`
	Images      AttachmentSetSnapshot `json:"images"`
	Map         AttachmentSetSnapshot `json:"map"`
}

func (f *Facility) Snapshot() FacilitySnapshot {
	return FacilitySnapshot{
		SeqNo: f.SeqNo, Name: f.Name, MainYn: f.MainYn,
		Addr1: f.Addr1, Addr2: f.Addr2, TelNo: f.TelNo,
		BusinessNum: f.BusinessNum, Desc: f.Desc, SimpleDesc: f.SimpleDesc,
		Images: f.Images.Snapshot(),
		Map:    f.Map.Snapshot(),
	}
}

func (f *Facility) Restore(s FacilitySnapshot) {
	f.SeqNo, f.Name, f.MainYn = s.SeqNo, s.Name, s.MainYn
	f.Addr1, f.Addr2, f.TelNo = s.Addr1, s.Addr2, s.TelNo
	f.BusinessNum, f.Desc, f.SimpleDesc = s.BusinessNum, s.Desc, s.SimpleDesc
	f.Images.Restore(s.Images)
	f.Map.Restore(s.Map)
}

type ExperienceSnapshot struct {
	SeqNo       int                   `json:"seq_no"`
	ForestSeqNo int                   `json:"forest_seq_no"`
	Name        string                `json:"name"`
	Categ1      string                `json:"categ1"`
	Categ2      string                `json:"categ2"`
	Title       string                `json:"title"`
	Desc        string                `json:"desc"`
	MainYn      string                `json:"main_yn"`
	Images      AttachmentSetSnapshot `json:"images"`
}

func (e *Experience) Snapshot() ExperienceSnapshot {
	return ExperienceSnapshot{
		SeqNo: e.SeqNo, ForestSeqNo: e.ForestSeqNo,
		Name: e.Name, Categ1: e.Categ1, Categ2: e.Categ2,
		Title: e.Title, Desc: e.Desc, MainYn: e.MainYn,
		Images: e.Images.Snapshot(),
	}
}

func RestoreExperience(s ExperienceSnapshot, imagePolicy Policy) *Experience {
	e := NewExperience(s.ForestSeqNo, imagePolicy)
	e.SeqNo, e.Name, e.Categ1, e.Categ2 = s.SeqNo, s.Name, s.Categ1, s.Categ2
	e.Title, e.Desc, e.MainYn = s.Title, s.Desc, s.MainYn
	e.Images.Restore(s.Images)
	return e
}

type VideoSnapshot struct {
	SeqNo       int                   `json:"seq_no"`
	ForestSeqNo int                   `json:"forest_seq_no"`
	Categ1      string                `json:"categ1"`
	File        AttachmentSetSnapshot `json:"file"`
	Rows        []TimestampRow        `json:"rows"`
}

func (v *Video) Snapshot() VideoSnapshot {
	return VideoSnapshot{
		SeqNo: v.SeqNo, ForestSeqNo: v.ForestSeqNo, Categ1: v.Categ1,
		File: v.File.Snapshot(),
		Rows: v.Rows(),
	}
}

func RestoreVideo(s VideoSnapshot, filePolicy Policy) *Video {
	v := NewVideo(s.ForestSeqNo, s.Categ1, filePolicy)
	v.SeqNo = s.SeqNo
	v.File.Restore(s.File)
	v.SetRows(s.Rows)
	return v
}

type NoticeSnapshot struct {
	SeqNo    int    `json:"seq_no"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
	URL1     string `json:"url1"`
	URL2     string `json:"url2"`
	URL3     string `json:"url3"`
	UseYn    string `json:"use_yn"`
}

func (n *Notice) Snapshot() NoticeSnapshot {
	return NoticeSnapshot{
		SeqNo: n.SeqNo, Title: n.Title, Contents: n.Contents,
		URL1: n.URL1, URL2: n.URL2, URL3: n.URL3, UseYn: n.UseYn,
	}
}

func (n *Notice) Restore(s NoticeSnapshot) {
	n.SeqNo, n.Title, n.Contents = s.SeqNo, s.Title, s.Contents
	n.URL1, n.URL2, n.URL3, n.UseYn = s.URL1, s.URL2, s.URL3, s.UseYn
}
