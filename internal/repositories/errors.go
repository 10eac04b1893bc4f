package repositories

import "errors"

// ErrNotFound is returned when the requested record does not exist.
// Concrete repositories translate their driver's not-found errors
// (gorm.ErrRecordNotFound, mongo.ErrNoDocuments) into this sentinel so
// callers do not depend on a specific store.
var ErrNotFound = errors.New("record not found")
