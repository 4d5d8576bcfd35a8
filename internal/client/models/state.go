package models

import "sync/atomic"

// SaveState holds the transient flags of one record's save cycle. It is
// private to its record, so concurrent saves of sibling records never
// share it.
type SaveState struct {
	loading  atomic.Bool
	progress atomic.Int32
	uploadOK atomic.Bool
	deleteOK atomic.Bool
}

func (s *SaveState) Loading() bool     { return s.loading.Load() }
func (s *SaveState) SetLoading(v bool) { s.loading.Store(v) }

// Progress is the percent of the most recent transfer event.
func (s *SaveState) Progress() int     { return int(s.progress.Load()) }
func (s *SaveState) SetProgress(p int) { s.progress.Store(int32(p)) }

func (s *SaveState) UploadSucceeded() bool { return s.uploadOK.Load() }
func (s *SaveState) DeleteSucceeded() bool { return s.deleteOK.Load() }

func (s *SaveState) UploadFailed() { s.uploadOK.Store(false) }
func (s *SaveState) DeleteFailed() { s.deleteOK.Store(false) }

// BeginCycle marks the record as loading and clears the failure flags.
func (s *SaveState) BeginCycle() {
	s.loading.Store(true)
	s.progress.Store(0)
	s.uploadOK.Store(true)
	s.deleteOK.Store(true)
}
