package aiquiz

import "github.com/saulo-duarte/quizdeck/internal/config"

type AIQuizContainer struct {
	Service Service
}

func NewAIQuizContainer(cfg *config.Config) *AIQuizContainer {
	provider := NewHTTPProvider(cfg.ServiceURL, cfg.Timeout)
	service := NewService(provider)

	return &AIQuizContainer{
		Service: service,
	}
}
