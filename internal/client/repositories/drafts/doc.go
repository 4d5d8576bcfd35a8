// Package drafts stores named workspace snapshots in the local SQLite
// database, so unfinished edits survive a restart.
package drafts
