package common

import "strings"

// FileNameFromURL returns the last path segment of a stored file URL, which
// the backend also uses as the object name for deletion.
//
//	FileNameFromURL("https://cdn.example/forest/F/abc.jpg") // "abc.jpg"
func FileNameFromURL(fileURL string) string {
	return fileURL[strings.LastIndex(fileURL, "/")+1:]
}

// Blank reports whether s is empty after trimming white space.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
