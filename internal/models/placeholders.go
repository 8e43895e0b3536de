package models

// Display fallbacks for joins whose referenced record is gone.
const (
	PlaceholderNA             = "N/A"
	PlaceholderUnknown        = "Unknown"
	PlaceholderUnknownStartup = "Unknown Startup"
	PlaceholderUnnamedStartup = "Unnamed Startup"
	PlaceholderNoDescription  = "No description available."
	PlaceholderNoDescShort    = "No description."
	PlaceholderNoMessages     = "No messages yet"
)
