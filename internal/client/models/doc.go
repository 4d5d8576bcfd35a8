// Package models defines the editable state of the forest admin client:
// facilities, experiences, videos and notices, the attachment sets they
// own, and the timestamp rows of a video.
//
// Ownership is strictly top-down. A record exclusively owns its attachment
// sets and rows; nothing here holds a reference back to a parent. Records
// are plain data plus small, lock-protected mutators; network work lives in
// package services.
package models
