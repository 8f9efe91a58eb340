package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Profile Operations
const (
	ErrMsgFailedToGetProfile   = "failed to get profile"
	ErrMsgFailedToUpdatePoints = "failed to update points"
	ErrMsgFailedToRecordCredit = "failed to record purchase credit"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetPart        = "failed to get part"
	ErrMsgFailedToListParts      = "failed to list parts"
	ErrMsgFailedToInsertPart     = "failed to insert part"
	ErrMsgFailedToUpdatePart     = "failed to update part"
	ErrMsgFailedToDeletePart     = "failed to delete part"
	ErrMsgFailedToGetScooter     = "failed to get scooter"
	ErrMsgFailedToListScooters   = "failed to list scooters"
	ErrMsgFailedToInsertScooter  = "failed to insert scooter"
	ErrMsgFailedToUpdateScooter  = "failed to update scooter"
	ErrMsgFailedToDeleteScooter  = "failed to delete scooter"
	ErrMsgFailedToLinkCompat     = "failed to link compatibility"
	ErrMsgFailedToUnlinkCompat   = "failed to unlink compatibility"
	ErrMsgFailedToListCompat     = "failed to list compatible parts"
	ErrMsgFailedToListCategories = "failed to list categories"
	ErrMsgFailedToUpsertCategory = "failed to upsert category"
)

// Error Messages - Garage Operations
const (
	ErrMsgFailedToInsertGarageItem = "failed to insert garage item"
	ErrMsgFailedToGetGarageItem    = "failed to get garage item"
	ErrMsgFailedToListGarageItems  = "failed to list garage items"
	ErrMsgFailedToUpdateOwnership  = "failed to update ownership"
	ErrMsgFailedToUpdateGarageItem = "failed to update garage item"
	ErrMsgFailedToDeleteGarageItem = "failed to delete garage item"
)

// Error Messages - Modification Operations
const (
	ErrMsgFailedToInsertModification = "failed to insert modification"
	ErrMsgFailedToGetModification    = "failed to get modification"
	ErrMsgFailedToListModifications  = "failed to list modifications"
	ErrMsgFailedToDeleteModification = "failed to delete modification"
)
