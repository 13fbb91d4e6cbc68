package rewriter

import "errors"

// ErrDepthMismatch is returned by Rewrite when t's matrix was built for
// a different nesting depth than the nest being rewritten.
var ErrDepthMismatch = errors.New("rewriter: transform depth does not match nest depth")
