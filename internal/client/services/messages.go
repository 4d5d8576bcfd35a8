package services

// User-facing dialog texts.
const (
	msgSaved              = "Saved."
	msgSaveFailed         = "Save failed."
	msgDeleted            = "Deleted."
	msgDeleteFailed       = "Delete failed."
	msgConfirmDelete      = "Delete this item?"
	msgUploadFailed       = "Some files failed to upload."
	msgFileDeleteFailed   = "Some files could not be deleted."
	msgSeasonsExhausted   = "Cannot add more. One video per season is allowed."
	msgRowsExhausted      = "Cannot add more rows than there are experiences."
	msgDuplicateSeason    = "Another video already uses this season."
	msgForestRequired     = "* Name, address, phone, business number, summary and description are required."
	msgExperienceRequired = "* Name, category, title and description are required."
	msgVideoRequired      = "* Season and video file are required."
	msgNoticeRequired     = "* Title and contents are required."
	msgSaveFacilityFirst  = "Save the facility first."
)
