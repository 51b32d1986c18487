package logging

// NewLoggerForTest exposes newLogger with a custom writer.
var NewLoggerForTest = newLogger
