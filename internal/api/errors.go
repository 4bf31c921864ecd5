package api

import "errors"

var errMissingUserID = errors.New("user_id is required")
