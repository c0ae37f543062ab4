package container

import (
	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"github.com/saulo-duarte/quizdeck/internal/app"
	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/saulo-duarte/quizdeck/internal/history"
	"github.com/saulo-duarte/quizdeck/internal/notify"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
)

type Container struct {
	Config          *config.Config
	Kind            quiz.Kind
	AIQuizContainer *aiquiz.AIQuizContainer
	Notifier        *notify.Presenter
	History         *history.Log
	Controller      *app.Controller
}

func New(cfg *config.Config) *Container {
	kind, err := quiz.ParseKind(cfg.QuizType)
	if err != nil {
		config.Logger.WithError(err).Warnf("Falling back to %s", quiz.KindMCQ)
		kind = quiz.KindMCQ
	}

	aiQuizContainer := aiquiz.NewAIQuizContainer(cfg)
	notifier := notify.NewPresenter(nil)
	log := history.NewLog(cfg.HistorySize)

	controller := app.NewController(aiQuizContainer.Service, notifier, log, app.Options{
		Questions: cfg.Questions,
		Kind:      kind,
	})

	return &Container{
		Config:          cfg,
		Kind:            kind,
		AIQuizContainer: aiQuizContainer,
		Notifier:        notifier,
		History:         log,
		Controller:      controller,
	}
}
