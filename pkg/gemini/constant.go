package gemini

import "time"

const (
	// DefaultModel is the model used when Config.Model is empty.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the Generative Language API base URL.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 30 * time.Second

	// MimeTypeJSON asks the model to answer with a JSON document.
	MimeTypeJSON = "application/json"
)
