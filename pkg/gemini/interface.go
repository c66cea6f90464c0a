package gemini

import "context"

// IGemini is a Gemini generateContent client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends one generation request.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used.
	Model() string
}

// New creates a client from cfg.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
