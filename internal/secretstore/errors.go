package secretstore

import "errors"

// ErrStoreRequest marks any secret store response that indicates failure.
// It is fatal to the loading pipeline; there is no retry at this layer.
var ErrStoreRequest = errors.New("secret store request failed")
