package logger

import (
	"go.uber.org/zap"
)

// Init installs the global zap logger, structured JSON in production and
// human-readable everywhere else.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
