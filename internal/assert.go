package internal

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Assert stops the process when mustBeTrue is false. It is reserved for
// broken contracts of trusted components (e.g. a plugin that reports
// success without initializing the device), not for recoverable errors.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	if len(extraArgs) == 0 {
		logger.Panic(ctx, "assertion failed")
		return
	}

	logger.Panic(ctx, "assertion failed: ", extraArgs)
}
