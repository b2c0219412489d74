package utils

import "log/slog"

// Level of the default slog handler, set from LOG_LEVEL once the config loads
var LogLevel = new(slog.LevelVar)
