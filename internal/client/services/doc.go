// Package services holds the editing workflows of the forest admin client:
// attachment transfer, the save orchestrator, the experience and video
// record lists, the facility and notice editors and the Workspace that
// owns them all.
//
// Every workflow reports to the user through the workspace's dialog.
// Network failures of individual transfers are reduced to booleans; only
// the persist call decides whether a save succeeded.
package services
