package health

// Service reports liveness and what the process is running with.
type Service struct {
	name     string
	provider string
}

// Status is the /health payload.
type Status struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Provider string `json:"llmProvider,omitempty"`
}

// NewService constructs a new health service.
func NewService(name, provider string) *Service {
	return &Service{name: name, provider: provider}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{Status: "healthy", Service: s.name, Provider: s.provider}
}
