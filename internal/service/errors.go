package service

import "errors"

var (
	ErrAlreadyDeleted = errors.New("record already deleted")
	ErrNotDeleted     = errors.New("record is not deleted")
	ErrParentDeleted  = errors.New("parent record is still deleted")

	ErrSyncInProgress = errors.New("sync already in progress")
	ErrRemoteOffline  = errors.New("remote backend unreachable")
)
