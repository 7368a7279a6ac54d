package cli

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger returns a development logger for an empty level,
// otherwise a production logger at the given level.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	if level == "" {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
